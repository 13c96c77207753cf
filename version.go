package pergola

// Version is the release version of the library and CLI. It is overridden
// at build time:
//
//	go build -ldflags "-X github.com/aretw0/pergola.Version=v1.2.3" ./cmd/pergola
var Version = "dev"
