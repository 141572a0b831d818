package domain

// CommonOptions contains shared configuration options for commands and the
// catalog runner.
type CommonOptions struct {
	Verbose bool
	DryRun  bool
}

// DefaultCommonOptions returns CommonOptions with default values.
func DefaultCommonOptions() CommonOptions {
	return CommonOptions{}
}
