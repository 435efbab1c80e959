package quire

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A design token compiler for the web"
	MsgBuildShort      = "Compile the token definition into a stylesheet"
	MsgCheckShort      = "Validate the token definition without writing anything"
	MsgInspectShort    = "Show the computed scale and token tables"
	MsgSpecimenShort   = "Render a type specimen sheet"
	MsgGenConfigShort  = "Output the configuration template"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice      = "\nDRY RUN MODE - No files were written"
	MsgStylesheetWritten = "Written %s (%d bytes, %s)\n"
	MsgSpecimenWritten   = "Written %s\n"
	MsgConfigWritten     = "Written %s\n"

	// Error messages
	MsgErrBuild    = "build failed: %w"
	MsgErrInspect  = "inspect failed: %w"
	MsgErrSpecimen = "specimen failed: %w"
	MsgErrCheck    = "token definition has %d issue(s)"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Preview changes without writing files"
	MsgFlagRoot     = "Project root directory (defaults to $QUIRE_ROOT, then the current directory)"
	MsgFlagOutput   = "Output path, relative to the project root"
	MsgFlagFormat   = "Stylesheet format (css or scss)"
	MsgFlagSpecimen = "Also write the SVG specimen sheet"
	MsgFlagUIFormat = "Output format (auto, term, text, json)"
	MsgFlagPreview  = "Render the specimen to the terminal instead of writing SVG"
	MsgFlagWidth    = "Word-wrap width for the terminal preview"
	MsgFlagWrite    = "Write the template to quire.toml instead of stdout"
	MsgFlagResolved = "Output the merged effective configuration"
)

// Long messages
const (
	MsgRootLong = `quire compiles a declarative token definition (quire.toml) into CSS
custom properties or an SCSS partial.

It computes a modular type scale with proportional line heights, carries
closed tables of font weights, family stacks, and z-index layers, builds
transition shorthand lists, and emits paired light and dark themes.`

	MsgBuildLong = `Build loads quire.toml, computes the full token set, and writes the
stylesheet to the configured output path.

Unknown token references and malformed scale parameters abort the build
with the first error found; use "quire check" to see all issues at once.`

	MsgBuildExample = `  quire build
  quire build --format scss --output scss/_tokens.scss
  quire build --with-specimen --dry-run`

	MsgCheckLong = `Check loads and compiles the token definition, collecting every issue
instead of stopping at the first. It writes nothing and exits non-zero
when the definition is unsound.`

	MsgInspectLong = `Inspect computes the token set and prints the type scale, token tables,
and resolved text styles. With --format json the same data is emitted
as machine-readable JSON.`

	MsgInspectExample = `  quire inspect
  quire inspect --format json | jq .steps`

	MsgSpecimenLong = `Specimen renders a type specimen sheet showing every scale step at its
computed size and line height. By default it writes an SVG next to the
token definition; with --preview it renders to the terminal instead.`

	MsgGenConfigLong = `Gen-config outputs a fully commented configuration template showing
every available setting with its default value. With --resolved it
outputs the merged effective configuration instead, which is useful for
seeing what a project's overrides actually produce.`

	MsgGenConfigExample = `  quire gen-config
  quire gen-config -w
  quire gen-config --resolved`

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(quire completion bash)
  # To load completions for each session, execute once:
  $ quire completion bash > /etc/bash_completion.d/quire

Zsh:
  $ quire completion zsh > "${fpath[1]}/_quire"

Fish:
  $ quire completion fish | source

PowerShell:
  PS> quire completion powershell | Out-String | Invoke-Expression`
)
