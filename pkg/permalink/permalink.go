// Package permalink handles the shareable location reference: a single
// "person_id=<id>" key-value pair that pins the focal person. The
// reference round-trips through a state file next to the dataset so a
// relaunch resumes where the viewer left off, and can be copied to the
// clipboard for sharing.
package permalink

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

// Key is the query key carrying the focal person id.
const Key = "person_id"

// Format renders the location reference for a focal person id.
func Format(personID string) string {
	v := url.Values{}
	v.Set(Key, personID)
	return v.Encode()
}

// Parse extracts the focal person id from a location reference.
// Returns "" when the reference is empty, malformed, or carries no
// person_id; callers fall back to the default focal resolution.
func Parse(ref string) string {
	ref = strings.TrimSpace(ref)
	// Tolerate full URLs pasted back in ("...?person_id=5").
	if i := strings.IndexByte(ref, '?'); i >= 0 {
		ref = ref[i+1:]
	}
	v, err := url.ParseQuery(ref)
	if err != nil {
		return ""
	}
	return v.Get(Key)
}

// StatePath returns the state file used to persist the reference for a
// dataset: a dotfile next to the data.
func StatePath(dataPath string) string {
	return dataPath + ".kinview"
}

// Save writes the reference for personID to the dataset's state file.
func Save(dataPath, personID string) error {
	if err := os.WriteFile(StatePath(dataPath), []byte(Format(personID)+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to save location reference: %w", err)
	}
	return nil
}

// Load reads the saved reference for a dataset. A missing or unreadable
// state file yields "" (default focal resolution), not an error.
func Load(dataPath string) string {
	data, err := os.ReadFile(StatePath(dataPath))
	if err != nil {
		return ""
	}
	return Parse(string(data))
}

// CopyToClipboard puts the reference for personID on the system
// clipboard.
func CopyToClipboard(personID string) error {
	return clipboard.WriteAll(Format(personID))
}
