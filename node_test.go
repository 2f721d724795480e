package willowpick

import "testing"

// --- Constructor defaults ---

func TestNewGroupDefaults(t *testing.T) {
	assertNodeDefaults(t, NewGroup("g"), "g", NodeTypeGroup)
}

func TestNewGeodeDefaults(t *testing.T) {
	assertNodeDefaults(t, NewGeode("geo"), "geo", NodeTypeGeode)
}

func TestNewQuadDefaults(t *testing.T) {
	c := Color{R: 0.2, G: 0.4, B: 0.6, A: 1}
	n := NewQuad("q", 30, 20, c)
	if n.Type != NodeTypeQuad || n.Width != 30 || n.Height != 20 {
		t.Errorf("quad = type %v size %vx%v", n.Type, n.Width, n.Height)
	}
	if n.Color != c {
		t.Errorf("Color = %v, want %v", n.Color, c)
	}
	if !n.IsDrawable() {
		t.Error("quad should be drawable")
	}
}

func TestNewLabelNotPickable(t *testing.T) {
	n := NewLabel("hud", "hello", nil)
	if n.Pickable {
		t.Error("labels should not be pickable by default")
	}
	if n.Text != "hello" {
		t.Errorf("Text = %q", n.Text)
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %v, want %v", n.Type, typ)
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if n.Color != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color)
	}
	if !n.Visible || !n.Pickable {
		t.Error("Visible and Pickable should default to true")
	}
	if !n.transformDirty {
		t.Error("transformDirty should be true")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	if a.ID == b.ID {
		t.Errorf("IDs should differ, both %d", a.ID)
	}
}

// --- Containment rules ---

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestContainmentRules(t *testing.T) {
	assertPanics(t, "drawable under group", func() {
		NewGroup("g").AddChild(NewQuad("q", 1, 1, ColorWhite))
	})
	assertPanics(t, "group under geode", func() {
		NewGeode("geo").AddChild(NewGroup("g"))
	})
	assertPanics(t, "child under drawable", func() {
		NewQuad("q", 1, 1, ColorWhite).AddChild(NewQuad("q2", 1, 1, ColorWhite))
	})
	assertPanics(t, "nil child", func() {
		NewGroup("g").AddChild(nil)
	})
	assertPanics(t, "AddDrawable with group", func() {
		NewGeode("geo").AddDrawable(NewGroup("g"))
	})
}

func TestAddChildCyclePanics(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	a.AddChild(b)
	assertPanics(t, "cycle", func() { b.AddChild(a) })
}

func TestAddChildReparents(t *testing.T) {
	g1 := NewGeode("g1")
	g2 := NewGeode("g2")
	q := NewQuad("q", 1, 1, ColorWhite)
	g1.AddDrawable(q)
	g2.AddDrawable(q)

	if g1.NumChildren() != 0 {
		t.Errorf("g1 children = %d, want 0", g1.NumChildren())
	}
	if q.Parent != g2 || !g2.HasChild(q) {
		t.Error("q should belong to g2")
	}
}

func TestRemoveChild(t *testing.T) {
	geo := NewGeode("geo")
	a := NewQuad("a", 1, 1, ColorWhite)
	b := NewQuad("b", 1, 1, ColorWhite)
	geo.AddDrawable(a)
	geo.AddDrawable(b)

	geo.RemoveChild(a)
	if geo.NumChildren() != 1 || geo.ChildAt(0) != b {
		t.Errorf("children after remove = %v", geo.Children())
	}
	if a.Parent != nil {
		t.Error("removed child should have nil parent")
	}
	assertPanics(t, "remove non-child", func() { geo.RemoveChild(a) })
}

func TestRemoveFromParentWithoutParent(t *testing.T) {
	n := NewGroup("orphan")
	n.RemoveFromParent() // must not panic
}

func TestFindChild(t *testing.T) {
	root := NewGroup("root")
	geo := NewGeode("boxes")
	root.AddChild(geo)
	if root.FindChild("boxes") != geo {
		t.Error("FindChild(boxes) should return the geode")
	}
	if root.FindChild("missing") != nil {
		t.Error("FindChild(missing) should return nil")
	}
}

// --- Path ---

func TestPathRootToLeaf(t *testing.T) {
	root := NewGroup("root")
	groupA := NewGroup("A")
	geodeB := NewGeode("B")
	x := NewQuad("X", 1, 1, ColorWhite)
	root.AddChild(groupA)
	groupA.AddChild(geodeB)
	geodeB.AddDrawable(x)

	path := x.Path()
	want := []*Node{root, groupA, geodeB}
	if len(path) != len(want) {
		t.Fatalf("len(path) = %d, want %d", len(path), len(want))
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %q, want %q", i, path[i].Name, want[i].Name)
		}
	}
	if len(root.Path()) != 0 {
		t.Error("root path should be empty")
	}
}

// --- Disposal ---

func TestDisposeRecursive(t *testing.T) {
	root := NewGroup("root")
	geo := NewGeode("geo")
	q := NewQuad("q", 1, 1, ColorWhite)
	root.AddChild(geo)
	geo.AddDrawable(q)

	geo.Dispose()
	if !geo.IsDisposed() || !q.IsDisposed() {
		t.Error("geode and its drawable should be disposed")
	}
	if root.NumChildren() != 0 {
		t.Error("disposed geode should be detached")
	}
	if q.ID != 0 {
		t.Error("disposed node ID should be cleared")
	}
	geo.Dispose() // second call is a no-op
}

func TestDebugModeDisposedPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	geo := NewGeode("geo")
	geo.Dispose()
	assertPanics(t, "AddChild on disposed", func() { s.Root().AddChild(geo) })
}
