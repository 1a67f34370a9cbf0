package commands

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Scaffold new languages for the psnd host"
	MsgRootLong  = `langgen scaffolds a new plugin language into a psnd project tree:
it emits the language's source, build, test, and documentation files and,
for centralized registration, wires the language into the shared host
files so the build picks it up.`
	MsgNewShort  = "Generate a new language"
	MsgNewLong   = "New emits every artifact for a language and registers it with the host project."
	MsgPlanShort = "List the files a generation run would touch"
	MsgPlanLong  = "Plan prints the artifact and host file paths for a name and strategy pair, without needing a project tree."

	// Status messages
	MsgDryRunNotice = "\nDRY RUN MODE - No changes were made"
	MsgNextSteps    = "\nYour language is ready! Next steps:\n" +
		"  1. Run 'make clean && make test' to build and verify\n" +
		"  2. Start the REPL: ./build/psnd %s\n"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun       = "Preview changes without executing them"
	MsgFlagFormat       = "Output format: auto, term, or text"
	MsgFlagExtensions   = "File extensions for the language (default .<name>)"
	MsgFlagRegistration = "Registration strategy: centralized or standalone"
	MsgFlagParser       = "Parser strategy: handwritten or grammar"
	MsgFlagProtect      = "Fail on existing generated files instead of overwriting them"
	MsgFlagRoot         = "Project root (default: walk up from the working directory)"
)
