// Package tagcolor assigns display colors to picture tags.
//
// Colors come from a fixed palette of ten named preset colors. A tag keeps the
// color it was first given: InitializeTagColors only adds entries for unseen
// tags, and Registry persists the assignments between runs as YAML.
package tagcolor
