package config

import "testing"

func TestParseCommandKind(t *testing.T) {
	cases := []struct {
		name string
		want CommandKind
	}{
		{"move", CmdMove},
		{"move_step", CmdMoveStep},
		{"walk", CmdWalk},
		{"run", CmdRun},
		{"jump", CmdJump},
		{"push", CmdPush},
		{"pull", CmdPull},
		{"update_map", CmdUpdateMap},
		{"generate_world", CmdGenerateWorld},
		{"teleport", CmdUnknown},
		{"", CmdUnknown},
	}
	for _, c := range cases {
		if got := ParseCommandKind(c.name); got != c.want {
			t.Errorf("ParseCommandKind(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestCommandKindRoundTrip(t *testing.T) {
	for name, kind := range commandNames {
		if kind.String() != name {
			t.Errorf("CommandKind(%d).String() = %q, want %q", kind, kind.String(), name)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	cases := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
		{DirNone, 0, 0},
	}
	for _, c := range cases {
		dx, dy := c.dir.Delta()
		if dx != c.dx || dy != c.dy {
			t.Errorf("%v.Delta() = (%d, %d), want (%d, %d)", c.dir, dx, dy, c.dx, c.dy)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if got := ParseDirection(d.String()); got != d {
			t.Errorf("ParseDirection(%q) = %v, want %v", d.String(), got, d)
		}
	}
	if got := ParseDirection("sideways"); got != DirNone {
		t.Errorf("ParseDirection(sideways) = %v, want DirNone", got)
	}
}
