package domain

// VideoJobState tracks one render job from upload to completion.
type VideoJobState string

const (
	JobReceived        VideoJobState = "received"
	JobScriptPersisted VideoJobState = "scriptPersisted"
	JobRunning         VideoJobState = "subprocessRunning"
	JobDone            VideoJobState = "done"
	JobFailed          VideoJobState = "failed"
)

// VideoJob is the transient entity spanning one render request. It is
// created when the script arrives and discarded once the response is sent;
// only the rendered file under the served directory outlives it.
type VideoJob struct {
	ID         string
	Topic      string
	Script     string
	ScriptPath string
	State      VideoJobState
}

// RenderResult is what the execution pipeline hands back to the HTTP layer.
// UsedFallback makes a degraded placeholder response distinguishable from a
// genuine render.
type RenderResult struct {
	VideoURL     string
	UsedFallback bool
	Message      string
}
