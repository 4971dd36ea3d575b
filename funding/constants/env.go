package constants

const (
	// EnvConfigPrefix is the envconfig prefix for all global switches.
	EnvConfigPrefix = "FLOSS_FUNDING"

	// EnvSilent silences every reminder for the whole process when its value
	// matches SilenceSentinel case-insensitively.
	EnvSilent = "FLOSS_FUNDING_SILENT"
	// EnvDebug enables debug logging of otherwise-swallowed persistence failures.
	EnvDebug = "FLOSS_FUNDING_DEBUG"
	// EnvNamePrefix overrides the prefix prepended to every derived variable name.
	EnvNamePrefix = "FLOSS_FUNDING_ENV_PREFIX"
	// EnvOnLoadMaxAge overrides the on_load lockfile max age, in seconds.
	EnvOnLoadMaxAge = "FLOSS_FUNDING_ON_LOAD_MAX_AGE_SECONDS"
	// EnvAtExitMaxAge overrides the at_exit lockfile max age, in seconds.
	EnvAtExitMaxAge = "FLOSS_FUNDING_AT_EXIT_MAX_AGE_SECONDS"

	// SilenceSentinel is the only value recognized by EnvSilent.
	SilenceSentinel = "true"

	// DefaultEnvNamePrefix is prepended to every derived variable name unless
	// overridden through EnvNamePrefix.
	DefaultEnvNamePrefix = "FLOSS_FUNDING_"

	// NamespaceDelimiter separates segments of a hierarchical namespace.
	NamespaceDelimiter = "::"
)

// Unpaid markers. A token equal to one of these (or to the per-namespace
// opt-out built from OptOutPrefix) activates a namespace with no payment
// implied. These literals are part of the wire contract and never change.
const (
	UnpaidMarkerFree   = "Free-as-in-beer"
	UnpaidMarkerNotYet = "Business-is-not-good-yet"
	OptOutPrefix       = "Not-financially-supporting-"
)
