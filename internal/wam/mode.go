package wam

// mode.go defines the machine's read/write toggle. Write is the initial
// mode; get_structure sets the mode for the instructions that follow it.

//go:generate go run golang.org/x/tools/cmd/stringer -type modeKind -output modekind_string.go

type modeKind uint8

const (
	modeKindWrite modeKind = iota
	modeKindRead
)

// mode is Write, or Read positioned at the next heap cell to inspect.
type mode struct {
	kind modeKind
	next Slot
}

func writeMode() mode { return mode{kind: modeKindWrite} }

func readMode(next Slot) mode { return mode{kind: modeKindRead, next: next} }

func (m mode) String() string {
	if m.kind == modeKindWrite {
		return "Write"
	}

	return "Read(" + m.next.String() + ")"
}

// advance returns the mode with its inspection cursor moved one cell
// forward. Only meaningful in Read mode.
func (m mode) advance() mode {
	return readMode(m.next + 1)
}
