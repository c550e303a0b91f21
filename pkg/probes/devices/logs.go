package devices

const (
	PROBES_RUNNING_SUITE                = "running probe suite"
	PROBES_EXECUTING_PROBE              = "executing probe"
	PROBES_QUERY_COULD_NOT_BE_BUILT     = "query could not be built"
	PROBES_PROBE_TRANSPORT_HAS_FAILED   = "probe transport has failed"
	PROBES_DECODING_DEVICES_HAS_FAILED  = "decoding devices has failed"
	PROBES_DEVICES_FETCHED_SUCCESSFULLY = "devices fetched successfully"
)
