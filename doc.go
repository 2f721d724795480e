// Package willowpick is a small retained-mode scene graph for [Ebitengine]
// built around picking: a pointer gesture becomes a ray, the ray is
// intersected with the scene, and the nearest drawable is handed to an
// [Action].
//
// # Scene graph
//
// Groups ([NewGroup]) hold groups and geodes. Geodes ([NewGeode]) hold
// drawables: quads ([NewQuad]), meshes ([NewMesh], [NewRibbon]) and labels
// ([NewLabel]). Each node has a 2D transform plus a Z depth. Larger Z is
// closer to the camera, and drawables are painted back to front.
//
//	scene := willowpick.NewScene()
//	geode := willowpick.NewGeode("boxes")
//	scene.Root().AddChild(geode)
//	geode.AddDrawable(willowpick.NewQuad("box", 80, 40, willowpick.ColorWhite))
//
// # Picking
//
// A [PickDispatcher] is an [EventHandler]. By default it fires on a left
// button release with ctrl held and passes only the nearest hit to its
// action:
//
//	sel := willowpick.NewSelectWithRestore(willowpick.ColorWhite, red)
//	scene.AddEventHandler(willowpick.NewPickDispatcher(sel))
//
// Built-in actions are [Recolor], [Remove] and [SelectWithRestore]. Any
// function can serve as an action through [ActionFunc]. Actions that
// remember drawables hold a [NodeRef], a weak handle that goes stale when
// the drawable is disposed.
//
// # Per-frame callbacks
//
// [Node.AddUpdateCallback] attaches functions that run once per frame after
// input handling. [AnimationPlayer] moves a node along an [AnimationPath].
// [TrailerCallback] drags a ribbon mesh behind a moving node.
//
// # Running
//
// [Run] opens a window for a scene using a [RunConfig], which can be
// loaded from TOML with [LoadConfig]. Structured logs go through zap; see
// [NewLogger].
//
// [Ebitengine]: https://ebitengine.org
package willowpick
