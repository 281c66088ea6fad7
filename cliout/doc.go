// Package cliout prints semantically tagged, colorized single-line labels
// with cross-platform terminal support.
//
// # Labels
//
// A label is one line made of an optional "[mark]" header and a message:
//
//	[+] Test case 1: Passed
//	[-] Failed to write file!
//
// Each LabelKind (section, item, success, warning, error, info, progress,
// plain, question, input, password) has a built-in color and mark.
//
// # Basic Usage
//
//	import "github.com/gousaiyang/colorlabels/cliout"
//
//	cliout.Section("Demo")
//	cliout.Success("All %d test cases passed", 4)
//	cliout.Error("Failed to write file!")
//
//	name, err := cliout.Input("Username: ")
//
// # Presentation Settings
//
// The presentation of every label is resolved per field from three layers:
// a per-call Override, the custom settings of the Console, and the built-in
// defaults. The first layer that sets a field wins.
//
//	c := cliout.New(os.Stdout)
//	_ = c.Configure(cliout.Options{
//	    ColorSpan: cliout.Ptr(cliout.SpanHeader),
//	    Marks:     map[cliout.LabelKind]string{cliout.KindError: "X"},
//	})
//	c.Error("rendered with mark X")
//	_ = c.Print(cliout.KindError, "rendered with mark Y", cliout.Override{Mark: cliout.Ptr("Y")})
//
// The same settings can be given as keys ("colorSpan", "showHeader",
// "errorMark", "infoColor", ...) through ConfigureMap or a YAML file loaded
// with LoadOptionsFile.
//
// # Color Span
//
//   - SpanNone (0): no color codes
//   - SpanMark (1): only the mark glyph is colored
//   - SpanHeader (2): the whole "[mark]" header is colored
//   - SpanLine (3): the header and message are colored (default)
//
// # In-place Rendering
//
// Every line starts with ClearLineSeq ("\r\033[K"), so a line written without
// a trailing newline is replaced by the next one. The progress package builds
// its animation frames on this.
//
// # Terminal Detection
//
// Default() writes to stdout through go-colorable, which translates ANSI
// sequences on legacy Windows consoles. Color is disabled when NO_COLOR is
// set or stdout is not a terminal; ForceColor re-enables it.
package cliout
