// Package figmasync pulls design tokens and component scaffolds for a
// multi-brand website out of a Figma file.
//
// A run fetches the file once, extracts color, typography and border tokens
// per brand (preferring the Variables API, falling back to published styles
// and raw node-tree traversal), renders them as SCSS and writes the output
// files, then scaffolds skeleton files for newly discovered components.
// Every run recomputes everything from the Figma file and the manual token
// tables; output files are overwritten idempotently and existing component
// folders are never touched.
//
// Basic usage:
//
//	cfg, err := config.Load("figma-sync.yaml", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := figmasync.Run(context.Background(), figmasync.Options{Config: cfg})
//
// The figma-sync CLI under cmd/figma-sync wraps this package.
package figmasync
