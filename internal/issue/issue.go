// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Catalog identifiers. The zero value means "no catalog entry".
const (
	PathConversionFailedId Id = iota + 1
	PathNotFoundId
	DeleteFailedId
	ShortPathFailedId
	EnvVarNotFoundId
	ConfigLoadFailedId
	InvalidEscapeModeId
	ArgumentRoundTripId
)

type (
	// Id identifies a catalog entry.
	Id int

	// MarkdownMsg is the Markdown body of a catalog entry.
	MarkdownMsg string

	// HttpLink is a documentation URL attached to an entry.
	HttpLink string

	// Issue is one catalog entry.
	Issue struct {
		id       Id
		name     string      // stable kebab-case name accepted by "winlaunch explain"
		mdMsg    MarkdownMsg // rendered through glamour
		docLinks []HttpLink
	}
)

var (
	render = glamour.Render

	pathConversionFailedIssue = &Issue{
		id:   PathConversionFailedId,
		name: "path-conversion-failed",
		mdMsg: `
# Couldn't convert a path to an absolute Windows path

The launcher turns every path it touches into an extended-length path
(` + "`\\\\?\\C:\\...`" + `) before calling the file system. The conversion fails
when the input cannot name a file.

## Common causes
- The path is empty or contains a NUL character
- A component contains one of ` + "`< > : \" | ? *`" + `
- A single component is longer than 255 characters
- A drive-relative path such as ` + "`D:foo`" + ` names a drive other than the current one
- A UNC path has no share name (` + "`\\\\server`" + `)

## Things you can try
- Pass an absolute path
~~~
> winlaunch abspath C:\work\project\bin
~~~
- Run with ` + "`--verbose`" + ` to see which rule rejected the path`,
		docLinks: []HttpLink{"https://learn.microsoft.com/windows/win32/fileio/naming-a-file"},
	}

	pathNotFoundIssue = &Issue{
		id:   PathNotFoundId,
		name: "path-not-found",
		mdMsg: `
# Path not found

The file or directory does not exist, or its attributes could not be read.

## Things you can try
- Check the spelling, and remember that ` + "`exists --dir`" + ` only accepts directories
- Directory junctions count as directories; dangling junctions do not
- Check that you can list the parent directory`,
	}

	deleteFailedIssue = &Issue{
		id:   DeleteFailedId,
		name: "delete-failed",
		mdMsg: `
# Couldn't delete a file

` + "`winlaunch rm`" + ` deletes regular files only.

## Common causes
- The path names a directory
- The file is open in another process without delete sharing
- The file is read-only or you lack permission

## Things you can try
- Close programs that may hold the file open
- Clear the read-only attribute
~~~
> attrib -R path\to\file
~~~`,
	}

	shortPathFailedIssue = &Issue{
		id:   ShortPathFailedId,
		name: "short-path-failed",
		mdMsg: `
# Couldn't shorten a path

Executable paths passed to CreateProcessW must fit in MAX_PATH (260
characters). Long paths are converted to their 8.3 short form first.

## Common causes
- The path is relative, or uses forward slashes mixed with ` + "`..`" + ` segments
- The path does not exist, so Windows has no short name for it
- 8.3 name generation is disabled on the volume

## Things you can try
- Check 8.3 name generation
~~~
> fsutil 8dot3name query C:
~~~
- Move the binary to a shorter directory`,
		docLinks: []HttpLink{"https://learn.microsoft.com/windows/win32/api/fileapi/nf-fileapi-getshortpathnamew"},
	}

	envVarNotFoundIssue = &Issue{
		id:   EnvVarNotFoundId,
		name: "env-var-not-found",
		mdMsg: `
# Environment variable not set

The variable is unset or empty. Empty values read as absent, and values
longer than 32767 characters are rejected.

## Things you can try
- Print the environment
~~~
> set
~~~
- Remember that variable names may not contain ` + "`=`" + ` after the first character`,
	}

	configLoadFailedIssue = &Issue{
		id:   ConfigLoadFailedId,
		name: "config-load-failed",
		mdMsg: `
# Couldn't load the configuration

winlaunch reads ` + "`config.cue`" + ` or ` + "`config.toml`" + ` from its configuration
directory and validates it against a schema.

## Example
~~~cue
escape: mode: "compat"
random: length: 8
ui: {
	verbose:      false
	color_scheme: "auto"
}
~~~

## Things you can try
- Show where winlaunch looks for the file
~~~
> winlaunch config path
~~~
- Regenerate the defaults
~~~
> winlaunch config init --force
~~~`,
	}

	invalidEscapeModeIssue = &Issue{
		id:   InvalidEscapeModeId,
		name: "invalid-escape-mode",
		mdMsg: `
# Invalid escape mode

` + "`escape.mode`" + ` must be one of:
- ` + "`compat`" + `: doubles every backslash, the historical launcher behavior
- ` + "`strict`" + `: follows the CommandLineToArgvW rules exactly

## Things you can try
- Fix the configuration value, or pass ` + "`--strict`" + ` on the command line
- Unset ` + "`WINLAUNCH_ESCAPE_MODE`" + ` if it overrides the file`,
	}

	argumentRoundTripIssue = &Issue{
		id:   ArgumentRoundTripId,
		name: "argument-round-trip",
		mdMsg: `
# Argument does not survive the command line

The child process would parse a different argument than the one passed.
In ` + "`compat`" + ` mode this happens for every argument that contains a backslash,
because backslashes outside quotes are doubled.

## Things you can try
- Check the line with strict escaping
~~~
> winlaunch cmdline --strict --check -- C:\dir\file "a b"
~~~`,
		docLinks: []HttpLink{"https://learn.microsoft.com/cpp/c-language/parsing-c-command-line-arguments"},
	}

	issues = map[Id]*Issue{
		pathConversionFailedIssue.Id(): pathConversionFailedIssue,
		pathNotFoundIssue.Id():         pathNotFoundIssue,
		deleteFailedIssue.Id():         deleteFailedIssue,
		shortPathFailedIssue.Id():      shortPathFailedIssue,
		envVarNotFoundIssue.Id():       envVarNotFoundIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		invalidEscapeModeIssue.Id():    invalidEscapeModeIssue,
		argumentRoundTripIssue.Id():    argumentRoundTripIssue,
	}
)

// Id returns the catalog identifier.
func (i *Issue) Id() Id { return i.id }

// Name returns the stable kebab-case name.
func (i *Issue) Name() string { return i.name }

// MarkdownMsg returns the raw Markdown body.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// DocLinks returns a copy of the documentation links.
func (i *Issue) DocLinks() []HttpLink { return slices.Clone(i.docLinks) }

// Render returns the entry rendered for a terminal. stylePath is a glamour
// style name ("dark", "light", "notty", "auto") or a style file path.
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			fmt.Fprintf(&md, "- <%s>\n", link)
		}
	}
	return render(md.String(), stylePath)
}

// String returns the entry name.
func (id Id) String() string {
	if i := Get(id); i != nil {
		return i.name
	}
	return fmt.Sprintf("issue(%d)", int(id))
}

// Values returns every entry ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for i := range maps.Values(issues) {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

// Names returns the sorted entry names.
func Names() []string {
	names := make([]string, 0, len(issues))
	for i := range maps.Values(issues) {
		names = append(names, i.name)
	}
	slices.Sort(names)
	return names
}

// Get returns the entry for id, or nil.
func Get(id Id) *Issue { return issues[id] }

// Lookup finds an entry by name. Matching ignores case.
func Lookup(name string) (*Issue, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, i := range issues {
		if i.name == name {
			return i, true
		}
	}
	return nil, false
}
