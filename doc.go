// Package evergreen is a particle morphing and instancing engine for a
// holiday tree scene.
//
// A fixed set of particles (needles, gift boxes and their ribbons, baubles,
// cone and star ornaments, and one big star on top) blends between two
// arrangements: a scattered cloud filling a sphere and an assembled
// Christmas tree. Every particle carries both positions; a single morph
// progress in [0, 1] chases the requested arrangement with exponential
// damping, and each frame the engine writes one transform matrix per
// particle into an [InstanceSink].
//
// # Quick start
//
//	scene, err := evergreen.NewScene(evergreen.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	buf := scene.NewInstanceBuffer()
//
//	// in the frame loop
//	scene.Update(dt)
//	for i, m := range buf.Matrices(evergreen.CategorySphere) {
//		// draw instance i with model matrix m
//	}
//
//	// on user action
//	scene.Toggle().Flip()
//
// The ebitenview and termview packages are ready-made renderers for an
// Ebitengine window and a terminal.
//
// # Particles
//
// [BuildDataset] generates the particles once from a [Config]. Records are
// grouped by [Category]; a particle's ID equals its slot in that
// category's instance buffer. Records never change after the build: only
// the transforms derived from them do. Pass a seeded *rand.Rand, or set
// [Config.Seed], for reproducible layouts.
//
// # Animation
//
// The [Animator] advances progress with [Damp] so convergence does not
// depend on frame rate. Per category it picks a reveal easing ([Linear] or
// the overshooting [BackOut]), an optional sway, and a height stretch.
// Reveals are staggered across 50 buckets by slot so particles do not grow
// in lock-step. While scattered, particles float and tumble; once the
// progress passes 0.99 they lock to their tree pose.
//
// # Sinks
//
// [InstanceSink] is the boundary to the renderer. [InstanceBuffer] is the
// in-memory implementation. Colors are uploaded once, on the first frame
// the sink reports ready; until then frames advance the progress but write
// nothing.
//
// # Scripts
//
// [LoadScript] parses a JSON list of steps (assemble, scatter, toggle,
// wait, settle, screenshot) that drives the arrangement for headless or
// automated runs:
//
//	{"initial": "scattered", "steps": [
//		{"action": "assemble"},
//		{"action": "settle", "frames": 600},
//		{"action": "screenshot", "label": "tree"}
//	]}
//
// # Debug
//
// [Scene.SetDebug] prints per-frame timing and instance counts to stderr.
package evergreen
