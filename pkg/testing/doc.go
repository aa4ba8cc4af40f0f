// Package testing provides a headless testing harness for sheets.
//
// # Quick Start
//
// Create a tester, show a sheet on its host, and make assertions:
//
//	func TestConfirm(t *testing.T) {
//	    tester := sheettest.NewTesterWithT(t)
//
//	    s := sheet.New("Delete file?", "This cannot be undone.")
//	    s.AddAction(sheet.NewAction("Delete", sheet.ActionStyleDestructive, onDelete))
//	    s.AddAction(sheet.NewAction("Keep", sheet.ActionStyleCancel, nil))
//	    s.Show(tester.Host())
//	    tester.Pump(0)
//
//	    if err := tester.TapText("Delete"); err != nil {
//	        t.Fatal(err)
//	    }
//	    if err := tester.PumpUntilSettled(5 * time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// # Frame Inspection
//
// Every pumped frame can be serialized into a flat list of display
// operations with absolute coordinates:
//
//	ops := tester.Ops()
//	if !ops.HasText("Delete") {
//	    t.Error("expected 'Delete' row")
//	}
//
// # Snapshot Testing
//
// Capture and compare serialized frames:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/confirm.snapshot.json")
//
// Update snapshots with:
//
//	SHEET_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// Control time for deterministic animation tests:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump(0)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import sheettest "github.com/go-drift/sheet/pkg/testing"
package testing
