/*
Package manifest builds menus from declarative YAML instead of Go code.

A manifest names the menu and its options; each option carries one action:
print a message, run a local command, or quit the menu. Load or Parse the
YAML, Validate it for a path-by-path problem report, then compile it with
Menu:

	f, err := manifest.Load("pergola.yaml")
	if err != nil {
		return err
	}
	if ps := f.Validate(); ps.HasErrors() {
		return fmt.Errorf("invalid manifest: %v", ps)
	}
	m, err := f.Menu()
	if err != nil {
		return err
	}
	return m.Run(ctx)

The manifest format:

	title: MY COOL CLI APP
	options:
	  - name: Say hello
	    pattern: h
	    action:
	      message: "**hello!**"
	  - name: Quit
	    pattern: q
	    action:
	      quit: true
	fallback:
	  action:
	    message: unknown input, try again
*/
package manifest
