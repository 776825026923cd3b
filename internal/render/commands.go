package render

// Kind identifies a recorded drawing primitive.
type Kind int

const (
	KindRect Kind = iota
	KindCircle
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindLine:
		return "line"
	default:
		return "unknown"
	}
}

// Command is one recorded primitive.
//
// Rect:   (X0, Y0) origin, (X1, Y1) width and height.
// Circle: (X0, Y0) center, Size radius.
// Line:   (X0, Y0) to (X1, Y1), Size stroke width.
type Command struct {
	Kind   Kind
	X0, Y0 float64
	X1, Y1 float64
	Size   float64
	Color  Color
}

// CommandList records drawing calls so a frame can be computed in one place
// and painted in another. The zero value is ready to use.
type CommandList struct {
	cmds []Command
}

var _ Canvas = (*CommandList)(nil)

func (l *CommandList) FillRect(x, y, width, height float64, c Color) {
	l.cmds = append(l.cmds, Command{Kind: KindRect, X0: x, Y0: y, X1: width, Y1: height, Color: c})
}

func (l *CommandList) FillCircle(cx, cy, radius float64, c Color) {
	l.cmds = append(l.cmds, Command{Kind: KindCircle, X0: cx, Y0: cy, Size: radius, Color: c})
}

func (l *CommandList) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	l.cmds = append(l.cmds, Command{Kind: KindLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Size: width, Color: c})
}

// Reset empties the list, keeping its capacity for the next frame.
func (l *CommandList) Reset() {
	l.cmds = l.cmds[:0]
}

// Len returns the number of recorded commands.
func (l *CommandList) Len() int {
	return len(l.cmds)
}

// Commands returns the recorded commands in draw order. The slice is only
// valid until the next Reset.
func (l *CommandList) Commands() []Command {
	return l.cmds
}

// Filter returns the recorded commands of the given kind, in draw order.
func (l *CommandList) Filter(kind Kind) []Command {
	var out []Command
	for _, c := range l.cmds {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Replay paints every recorded command onto dst in order.
func (l *CommandList) Replay(dst Canvas) {
	for _, c := range l.cmds {
		switch c.Kind {
		case KindRect:
			dst.FillRect(c.X0, c.Y0, c.X1, c.Y1, c.Color)
		case KindCircle:
			dst.FillCircle(c.X0, c.Y0, c.Size, c.Color)
		case KindLine:
			dst.StrokeLine(c.X0, c.Y0, c.X1, c.Y1, c.Size, c.Color)
		}
	}
}
