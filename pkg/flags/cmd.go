package flags

// This file contains all the flags used in the cmd package.

type Flag struct {
	Full  string
	Short string
}

var (
	// Global flags
	JSONFlag         = Flag{Full: "json", Short: "j"}
	TableFlag        = Flag{Full: "table", Short: "t"}
	OrganizationFlag = Flag{Full: "org", Short: "o"}
	ProjectFlag      = Flag{Full: "project", Short: "p"}
	VerboseFlag      = Flag{Full: "verbose", Short: "v"}
	TraceFlag        = Flag{Full: "trace", Short: "x"}
	DryRunFlag       = Flag{Full: "dry-run"}

	// Command flags
	NameFlag     = Flag{Full: "name"}
	EmailFlag    = Flag{Full: "email"}
	PasswordFlag = Flag{Full: "password"}
	StateFlag    = Flag{Full: "state"}
	GPUClassFlag = Flag{Full: "gpu-class"}
)
