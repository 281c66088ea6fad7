package cliout

// LabelKind identifies the semantic type of a label.
type LabelKind string

const (
	KindSection  LabelKind = "section"
	KindItem     LabelKind = "item"
	KindSuccess  LabelKind = "success"
	KindWarning  LabelKind = "warning"
	KindError    LabelKind = "error"
	KindInfo     LabelKind = "info"
	KindProgress LabelKind = "progress"
	KindPlain    LabelKind = "plain"
	KindQuestion LabelKind = "question"
	KindInput    LabelKind = "input"
	KindPassword LabelKind = "password"
)

// allKinds keeps declaration order for listings and key parsing.
var allKinds = []LabelKind{
	KindSection, KindItem, KindSuccess, KindWarning, KindError, KindInfo,
	KindProgress, KindPlain, KindQuestion, KindInput, KindPassword,
}

var defaultColors = map[LabelKind]Color{
	KindSection:  BrightMagenta,
	KindItem:     ColorNone,
	KindSuccess:  BrightGreen,
	KindWarning:  BrightYellow,
	KindError:    BrightRed,
	KindInfo:     BrightCyan,
	KindProgress: BrightCyan,
	KindPlain:    ColorNone,
	KindQuestion: BrightCyan,
	KindInput:    BrightCyan,
	KindPassword: BrightCyan,
}

var defaultMarks = map[LabelKind]string{
	KindSection:  "#",
	KindItem:     "*",
	KindSuccess:  "+",
	KindWarning:  "!",
	KindError:    "-",
	KindInfo:     "i",
	KindProgress: "=",
	KindPlain:    "*",
	KindQuestion: "?",
	KindInput:    ">",
	KindPassword: ">",
}

// AllKinds returns every label kind in declaration order.
func AllKinds() []LabelKind {
	kinds := make([]LabelKind, len(allKinds))
	copy(kinds, allKinds)
	return kinds
}

// Valid reports whether k is a known label kind.
func (k LabelKind) Valid() bool {
	_, ok := defaultMarks[k]
	return ok
}

// DefaultColor returns the built-in color of k.
func (k LabelKind) DefaultColor() Color {
	return defaultColors[k]
}

// DefaultMark returns the built-in mark of k.
func (k LabelKind) DefaultMark() string {
	return defaultMarks[k]
}
