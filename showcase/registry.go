package main

// Demo is one scripted walkthrough. Run presents a sheet on the
// recorder's host and captures the frames worth keeping.
type Demo struct {
	Name     string
	Subtitle string
	Run      func(*Recorder) error
}

// demos is the registry of walkthroughs. Add new demos here to include
// them in the default run.
var demos = []Demo{
	{"classic", "Title, message, and a cancel row", runClassic},
	{"destructive", "Confirming a destructive choice", runDestructive},
	{"cancel-only", "A lone cancel row", runCancelOnly},
	{"headerless", "Actions without a header, with press feedback", runHeaderless},
	{"themed", "Custom colors loaded from YAML", runThemed},
}
