package export

import "io"
import "fmt"
import "strings"

// An Entry describes a written file.
type Entry struct {
	Name  string
	Path  string
	Size  int   // image side, zero for multi-size containers
	Bytes int64
}

// Report lists the files written by a run.
type Report struct {
	Entries []Entry
}

// Adds an entry to the report.
func (self *Report) Add(entry Entry) {
	self.Entries = append(self.Entries, entry)
}

// Returns the total size of the written files.
func (self *Report) TotalBytes() int64 {
	var total int64
	for _, entry := range self.Entries { total += entry.Bytes }
	return total
}

// Writes one line per entry, like "  icon.png (1024x1024): 1234 bytes".
func (self *Report) WriteTo(w io.Writer) (int64, error) {
	var builder strings.Builder
	for _, entry := range self.Entries {
		if entry.Size > 0 {
			fmt.Fprintf(&builder, "  %s (%dx%d): %d bytes\n", entry.Name, entry.Size, entry.Size, entry.Bytes)
		} else {
			fmt.Fprintf(&builder, "  %s: %d bytes\n", entry.Name, entry.Bytes)
		}
	}
	n, err := io.WriteString(w, builder.String())
	return int64(n), err
}
