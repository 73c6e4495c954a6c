package segments

import (
	"strings"

	"gitlab.com/tinyland/lab/pulse-line/pkg/config"
)

// DirectorySegment shows the workspace directory. By default it emits just
// the final path component; with ShowFullPath it emits the raw path.
type DirectorySegment struct {
	showFullPath bool
}

// NewDirectorySegment returns a directory segment in short-name mode.
func NewDirectorySegment() *DirectorySegment {
	return &DirectorySegment{}
}

// WithFullPath toggles raw-path output.
func (d *DirectorySegment) WithFullPath(show bool) *DirectorySegment {
	d.showFullPath = show
	return d
}

func (d *DirectorySegment) ID() ID { return IDDirectory }

func (d *DirectorySegment) Collect(in *config.InputData) *SegmentData {
	current := in.Workspace.CurrentDir
	if current == "" {
		current = in.Cwd
	}

	name := current
	if !d.showFullPath {
		name = ExtractDirectoryName(current)
	}

	return &SegmentData{
		Primary:  name,
		Metadata: map[string]string{"full_path": current},
	}
}

// ExtractDirectoryName returns the display name for a directory path. Input
// paths are not guaranteed to match the host platform's separator
// convention, so both '/' and '\' are handled regardless of GOOS.
//
//	/home/user/project    -> project
//	C:\Users\me\project   -> project
//	D: (and D:/, D:\)     -> D:\
//	/ (and "")            -> root
func ExtractDirectoryName(path string) string {
	trimmed := strings.TrimRight(path, "/\\")

	// Bare drive letter is a Windows drive root; canonicalize it.
	if len(trimmed) == 2 && trimmed[1] == ':' {
		return trimmed + `\`
	}

	// Try both separator conventions. A candidate only proves a split
	// happened when it is strictly shorter than the path it came from.
	unixName := lastAfter(trimmed, '/')
	windowsName := lastAfter(trimmed, '\\')

	name := trimmed
	if len(windowsName) < len(trimmed) {
		name = windowsName
	} else if len(unixName) < len(trimmed) {
		name = unixName
	}

	if name == "" {
		return "root"
	}
	return name
}

// lastAfter returns the substring after the final occurrence of sep, or s
// unchanged when sep does not occur.
func lastAfter(s string, sep byte) string {
	if i := strings.LastIndexByte(s, sep); i >= 0 {
		return s[i+1:]
	}
	return s
}
