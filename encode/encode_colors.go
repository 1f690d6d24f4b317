package encode

import (
	"github.com/fatih/color"

	"github.com/quanta-format/go-quanta/ir"
)

// Class is the syntactic role of a piece of written text.
type Class int

const (
	ClassValue   Class = iota // a scalar value, colored by its type
	ClassName                 // member names
	ClassTag                  // tags with their names, values and parentheses
	ClassMarker               // ? G~ ~ ^
	ClassSource               // $n$m
	ClassTypeTag              // the prefix of a tagged string
	ClassOperator
	ClassPunct // = , { } [ ] ( )
)

// Colors maps classes, and the values of each type, to coloring
// functions. Text with no entry is passed to Default.
type Colors struct {
	Default func(string) string
	Class   map[Class]func(string) string
	Value   map[ir.Type]func(string) string
}

func rgb(r, g, b int) func(string) string {
	f := color.RGB(r, g, b).SprintFunc()
	return func(s string) string { return f(s) }
}

func attr(a color.Attribute) func(string) string {
	f := color.New(a).SprintFunc()
	return func(s string) string { return f(s) }
}

// NewColors returns the terminal palette of q view.
func NewColors() *Colors {
	numbers := rgb(128, 216, 236)
	return &Colors{
		Default: plain,
		Class: map[Class]func(string) string{
			ClassName:     rgb(128, 168, 196),
			ClassTag:      rgb(74, 92, 138),
			ClassMarker:   rgb(230, 160, 40),
			ClassSource:   rgb(150, 150, 150),
			ClassTypeTag:  rgb(88, 158, 86),
			ClassOperator: rgb(196, 128, 128),
			ClassPunct:    rgb(255, 0, 196),
		},
		Value: map[ir.Type]func(string) string{
			ir.NullType:       rgb(168, 0, 196),
			ir.BoolType:       attr(color.FgCyan),
			ir.IntegerType:    numbers,
			ir.DecimalType:    numbers,
			ir.CurrencyType:   numbers,
			ir.TimeType:       rgb(196, 96, 16),
			ir.StringType:     rgb(8, 196, 16),
			ir.IdentifierType: plain,
		},
	}
}

func plain(s string) string { return s }

// Color colors s, written for a node of type t in class c.
func (c *Colors) Color(t ir.Type, cl Class, s string) string {
	return c.Get(t, cl)(s)
}

func (c *Colors) Get(t ir.Type, cl Class) func(string) string {
	var f func(string) string
	if cl == ClassValue {
		f = c.Value[t]
	} else {
		f = c.Class[cl]
	}
	if f == nil {
		return c.Default
	}
	return f
}
