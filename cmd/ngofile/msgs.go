package ngofile

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Enumerate files matching glob patterns"
	MsgListShort       = "List files under one or more sources"
	MsgListLong        = "List walks each SOURCE (a directory, a file, or a glob such as dir/*.go) and prints every entry matching the include patterns and none of the exclude patterns."
	MsgZipShort        = "List entries of a zip archive"
	MsgZipLong         = "Zip filters the namelist of ARCHIVE with the same pattern rules as list. Patterns match full archive paths; -r lets them match at any depth."
	MsgFindShort       = "Find a file through the root registry"
	MsgRootsShort      = "Manage the persisted root registry"
	MsgRootsListShort  = "Show registered roots, most productive first"
	MsgRootsAddShort   = "Register directories (globs allowed)"
	MsgRootsClearShort = "Remove every registered root"
	MsgCopyShort       = "Copy matching files into one or more directories"
	MsgCopyLong        = "Copy mirrors the files selected from SRC under each DEST, keeping their layout relative to SRC. Files whose content already matches are left alone."
	MsgGenConfigShort  = "Print or write the default configuration"
	MsgGenConfigLong   = "Gen-config prints the built-in defaults with every value commented out. With -w it writes them to the user configuration file."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Result messages
	MsgRootsAdded    = "Added %d root(s)"
	MsgRootsCleared  = "Cleared the root registry"
	MsgConfigWritten = "Wrote %s"
	MsgVersionFormat = "ngofile version %s\n  commit: %s\n  built:  %s\n"
	MsgManWritten    = "Wrote man pages to %s"

	// Error messages
	MsgErrConfigExists = "%s already exists; remove it first"
	MsgErrSearchPath   = "unknown search path %q (known: %s)"
	MsgErrRootFlags    = "--root, --search-path and --modules are mutually exclusive"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig        = "Read configuration from FILE after the default locations"
	MsgFlagOutput        = "Output format: auto, term, text, json or yaml"
	MsgFlagInclude       = "Include pattern (repeatable)"
	MsgFlagExclude       = "Exclude pattern (repeatable)"
	MsgFlagRecursive     = "Descend into subdirectories"
	MsgFlagInParents     = "Also search every parent directory up to the filesystem root"
	MsgFlagFolders       = "0 files only, 1 files and folders, 2 folders only"
	MsgFlagIgnoreMissing = "Treat a missing source as empty"
	MsgFlagRoot          = "Search this directory instead of the registry (repeatable)"
	MsgFlagSearchPath    = "Search the named search path from the configuration"
	MsgFlagModules       = "Search the module directories of this binary"
	MsgFlagExists        = "Print nothing; exit 1 when there is no match"
	MsgFlagAll           = "List every match in every root instead of the first"
	MsgFlagNoRecursive   = "Copy only the top level of SRC"
	MsgFlagNoCreateDirs  = "Fail when a destination directory is missing"
	MsgFlagWrite         = "Write to the user configuration file instead of stdout"
	MsgFlagManDir        = "Directory to write man pages into"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/find-long.txt
	msgFindLongRaw string
	MsgFindLong    = strings.TrimSpace(msgFindLongRaw)
)

// Examples
const (
	MsgListExample = `  ngofile list .                        # files in the current directory
  ngofile list src -r -i '*.go' -e vendor
  ngofile list 'docs/*.md' --folders 1
  ngofile list . --in-parents -i go.mod   # look upward for go.mod`

	MsgZipExample = `  ngofile zip dist.zip -r -i '*.py'
  ngofile zip dist.zip -i 'pkg/*' -e '*.pyc'`

	MsgFindExample = `  ngofile find README.md
  ngofile find '*.toml' --root ~/src --root ~/work
  ngofile find setup.cfg --search-path projects --exists`

	MsgCopyExample = `  ngofile copy src backup -i '*.go' -e '*_test.go'
  ngofile copy 'notes/*.md' /mnt/a /mnt/b`
)

// MsgUsageTemplate is the cobra usage template
const MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "Commands:"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold .Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
