package trigger

import (
	"github.com/pipeline-tools/ccnotify/internal/config"
)

// Environment variable prefixes used to hand context to a CI job run.
const (
	EventEnvPrefix  = "CC_EVENT_"
	CIDataEnvPrefix = "CI_DATA_"
)

// EnvVar is one environment variable override for a CI job run.
type EnvVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// BuildJob describes one CI job run to start: which project, how, and
// with what environment. Assembling a BuildJob performs no API calls;
// the invoking compute layer submits it.
type BuildJob struct {
	Project       string            `json:"project"`
	Batch         bool              `json:"batch"`
	Buildspec     string            `json:"buildspec,omitempty"`
	SourceVersion string            `json:"source_version,omitempty"`
	Env           map[string]string `json:"env,omitempty"`
}

// CIData is the CI-run context handed to the job environment under the
// CI_DATA_ prefix, so the running job can reference the conversation it
// was started from.
type CIData struct {
	CommitMessage string
	CommentID     string
}

// ToEnvVar renders the CI data as prefixed environment variables.
func (d CIData) ToEnvVar(prefix string) map[string]string {
	vars := make(map[string]string)
	if d.CommitMessage != "" {
		vars[prefix+"COMMIT_MESSAGE"] = d.CommitMessage
	}
	if d.CommentID != "" {
		vars[prefix+"COMMENT_ID"] = d.CommentID
	}
	return vars
}

// CIDataFromEnvVar reconstructs CIData from a job environment.
func CIDataFromEnvVar(vars map[string]string, prefix string) CIData {
	return CIData{
		CommitMessage: vars[prefix+"COMMIT_MESSAGE"],
		CommentID:     vars[prefix+"COMMENT_ID"],
	}
}

// AssembleJobs renders one BuildJob per selected project, seeding each
// with the event context under CC_EVENT_ and the CI data under CI_DATA_.
func AssembleJobs(projects []config.ProjectConfig, ctx *Context) []BuildJob {
	ev := ctx.Event

	env := ev.ToEnvVar(EventEnvPrefix)
	ciData := CIData{CommitMessage: ctx.CommitMessage}
	for key, value := range ciData.ToEnvVar(CIDataEnvPrefix) {
		env[key] = value
	}

	jobs := make([]BuildJob, 0, len(projects))
	for _, project := range projects {
		job := BuildJob{
			Project:       project.Name,
			Batch:         project.Batch,
			Buildspec:     project.Buildspec,
			SourceVersion: ev.SourceCommitID(),
			Env:           env,
		}
		jobs = append(jobs, job)
	}
	return jobs
}

// Overrides renders the job environment in the name/value/type shape CI
// APIs expect for environment variable overrides.
func (j BuildJob) Overrides() []EnvVar {
	overrides := make([]EnvVar, 0, len(j.Env))
	for name, value := range j.Env {
		overrides = append(overrides, EnvVar{Name: name, Value: value, Type: "PLAINTEXT"})
	}
	return overrides
}
