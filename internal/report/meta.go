package report

import (
	"os"
	"time"

	"github.com/google/uuid"
)

// Meta is the provenance bundle embedded in every report: run identity,
// GitLab CI context when present, and finding counts around the message
// filter.
type Meta struct {
	ReportID   string `json:"report_id"`
	ReportDate string `json:"report_date"`
	FromCI     bool   `json:"report_from_ci"`

	CommitDate   string `json:"commit_date,omitempty"`
	CommitAuthor string `json:"commit_author,omitempty"`
	CommitTitle  string `json:"commit_title,omitempty"`
	CommitBranch string `json:"commit_branch,omitempty"`
	CommitSHA    string `json:"commit_sha,omitempty"`

	MRSourceBranch string `json:"mr_source_branch,omitempty"`
	MRTargetBranch string `json:"mr_target_branch,omitempty"`
	MRTitle        string `json:"mr_title,omitempty"`
	MRIID          string `json:"mr_iid,omitempty"`

	JobStartedByID    string `json:"pipeline_job_started_by_id,omitempty"`
	JobStartedByLogin string `json:"pipeline_job_started_by_login,omitempty"`
	JobStartedByName  string `json:"pipeline_job_started_by_name,omitempty"`
	JobStartedByEmail string `json:"pipeline_job_started_by_email,omitempty"`
	JobImage          string `json:"pipeline_job_image,omitempty"`
	JobName           string `json:"pipeline_job_name,omitempty"`
	JobStage          string `json:"pipeline_job_stage,omitempty"`
	JobURL            string `json:"pipeline_job_url,omitempty"`
	JobDate           string `json:"pipeline_job_date,omitempty"`

	PipelineDate     string `json:"pipeline_date,omitempty"`
	PipelineURL      string `json:"pipeline_url,omitempty"`
	ProjectPath      string `json:"pipeline_project_path,omitempty"`
	ProjectPathSlug  string `json:"pipeline_project_path_slug,omitempty"`
	ProjectName      string `json:"pipeline_project_name,omitempty"`
	ProjectGroupRoot string `json:"pipeline_project_group_root,omitempty"`
	ProjectGroup     string `json:"pipeline_project_group,omitempty"`
	ProjectURL       string `json:"pipeline_project_url,omitempty"`
	ServerURL        string `json:"pipeline_server_url,omitempty"`

	TotalCount    int `json:"total_message_count"`    // before the message filter
	FilteredCount int `json:"filtered_message_count"` // after the message filter
}

// CollectMeta builds the bundle from the environment (GitLab CI predefined
// variables) and the run's counts.
func CollectMeta(total, filtered int) Meta {
	return Meta{
		ReportID:   uuid.NewString(),
		ReportDate: time.Now().Format(time.RFC3339),
		FromCI:     os.Getenv("GITLAB_CI") != "",

		CommitDate:   os.Getenv("CI_COMMIT_TIMESTAMP"),
		CommitAuthor: os.Getenv("CI_COMMIT_AUTHOR"),
		CommitTitle:  os.Getenv("CI_COMMIT_TITLE"),
		CommitBranch: os.Getenv("CI_COMMIT_BRANCH"),
		CommitSHA:    os.Getenv("CI_COMMIT_SHA"),

		MRSourceBranch: os.Getenv("CI_MERGE_REQUEST_SOURCE_BRANCH_NAME"),
		MRTargetBranch: os.Getenv("CI_MERGE_REQUEST_TARGET_BRANCH_NAME"),
		MRTitle:        os.Getenv("CI_MERGE_REQUEST_TITLE"),
		MRIID:          os.Getenv("CI_MERGE_REQUEST_IID"),

		JobStartedByID:    os.Getenv("GITLAB_USER_ID"),
		JobStartedByLogin: os.Getenv("GITLAB_USER_LOGIN"),
		JobStartedByName:  os.Getenv("GITLAB_USER_NAME"),
		JobStartedByEmail: os.Getenv("GITLAB_USER_EMAIL"),
		JobImage:          os.Getenv("CI_JOB_IMAGE"),
		JobName:           os.Getenv("CI_JOB_NAME"),
		JobStage:          os.Getenv("CI_JOB_STAGE"),
		JobURL:            os.Getenv("CI_JOB_URL"),
		JobDate:           os.Getenv("CI_JOB_STARTED_AT"),

		PipelineDate:     os.Getenv("CI_PIPELINE_CREATED_AT"),
		PipelineURL:      os.Getenv("CI_PIPELINE_URL"),
		ProjectPath:      os.Getenv("CI_PROJECT_PATH"),
		ProjectPathSlug:  os.Getenv("CI_PROJECT_PATH_SLUG"),
		ProjectName:      os.Getenv("CI_PROJECT_NAME"),
		ProjectGroupRoot: os.Getenv("CI_PROJECT_ROOT_NAMESPACE"),
		ProjectGroup:     os.Getenv("CI_PROJECT_NAMESPACE"),
		ProjectURL:       os.Getenv("CI_PROJECT_URL"),
		ServerURL:        os.Getenv("CI_SERVER_URL"),

		TotalCount:    total,
		FilteredCount: filtered,
	}
}
