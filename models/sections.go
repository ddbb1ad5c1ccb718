// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Section names of the generated augur.config.json. The consuming
// application looks sections up by these exact keys.
const (
	SectionCache       = "Cache"
	SectionDatabase    = "Database"
	SectionGitHub      = "GitHub"
	SectionServer      = "Server"
	SectionFacade      = "Facade"
	SectionGHTorrent   = "GHTorrent"
	SectionDevelopment = "Development"
	SectionPlugins     = "Plugins"
	SectionHousekeeper = "Housekeeper"
	SectionWorkers     = "Workers"
)

// AugurSchema is the schema every Augur installation stores its data in.
const AugurSchema = "augur_data"

// GitHubAPIKeyPlaceholder is written into the GitHub section until the
// operator replaces it with a real token.
const GitHubAPIKeyPlaceholder = "GITHUB_API_KEY"

// CacheSection configures the file cache used by the Augur server.
type CacheSection struct {
	Config CacheConfig `json:"config"`
}

// CacheConfig holds the dotted cache options exactly as Beaker expects them.
type CacheConfig struct {
	DataDir string `json:"cache.data_dir"`
	LockDir string `json:"cache.lock_dir"`
	Type    string `json:"cache.type"`
}

// DatabaseSection holds the Augur database connection. Every field except
// Schema is copied verbatim from the credentials record, so the values keep
// whatever JSON type the operator used.
type DatabaseSection struct {
	Database json.RawMessage `json:"database"`
	Host     json.RawMessage `json:"host"`
	Port     json.RawMessage `json:"port"`
	User     json.RawMessage `json:"user"`
	Password json.RawMessage `json:"password"`
	Schema   string          `json:"schema"`
	Key      json.RawMessage `json:"key"`
	ZombieID json.RawMessage `json:"zombie_id"`
}

// GitHubSection carries the GitHub API key used by the collection workers.
type GitHubSection struct {
	APIKey string `json:"apikey"`
}

// ServerSection configures the Augur HTTP server. All values are strings in
// the generated file.
type ServerSection struct {
	Host        string `json:"host"`
	Port        string `json:"port"`
	Workers     string `json:"workers"`
	CacheExpire string `json:"cache_expire"`
}

// FacadeConnection is the Facade section produced by the interactive prompts.
type FacadeConnection struct {
	Host     string   `json:"host"`
	Port     string   `json:"port"`
	Name     string   `json:"name"`
	User     string   `json:"user"`
	Pass     string   `json:"pass"`
	Projects []string `json:"projects"`
}

// FacadeSwitches is the Facade section written when nobody configured Facade
// interactively. Each field is a 0/1 switch.
type FacadeSwitches struct {
	CheckUpdates           int `json:"check_updates"`
	CloneRepos             int `json:"clone_repos"`
	CreateXLSXSummaryFiles int `json:"create_xlsx_summary_files"`
	DeleteMarkedRepos      int `json:"delete_marked_repos"`
	FixAffiliations        int `json:"fix_affiliations"`
	ForceAnalysis          int `json:"force_analysis"`
	ForceInvalidateCaches  int `json:"force_invalidate_caches"`
	ForceUpdates           int `json:"force_updates"`
	LimitedRun             int `json:"limited_run"`
	Multithreaded          int `json:"multithreaded"`
	NukeStoredAffiliations int `json:"nuke_stored_affiliations"`
	PullRepos              int `json:"pull_repos"`
	RebuildCaches          int `json:"rebuild_caches"`
	RunAnalysis            int `json:"run_analysis"`
}

// GHTorrentConnection is the GHTorrent section produced by the interactive
// prompts.
type GHTorrentConnection struct {
	Host string `json:"host"`
	Port string `json:"port"`
	Name string `json:"name"`
	User string `json:"user"`
	Pass string `json:"pass"`
}

// GHTorrentDefaults is the GHTorrent section written when GHTorrent was not
// configured interactively. Its keys are ordered alphabetically, unlike
// [GHTorrentConnection].
type GHTorrentDefaults struct {
	Host string `json:"host"`
	Name string `json:"name"`
	Pass string `json:"pass"`
	Port string `json:"port"`
	User string `json:"user"`
}

// DevelopmentSection toggles developer and interactive modes ("0" or "1").
type DevelopmentSection struct {
	Developer   string `json:"developer"`
	Interactive string `json:"interactive"`
}

// Plugins lists the plugins the Augur server loads.
type Plugins []string

// HousekeeperSection lists the data collection jobs the housekeeper schedules.
type HousekeeperSection struct {
	Jobs []HousekeeperJob `json:"jobs"`
}

// HousekeeperJob describes one recurring collection job.
type HousekeeperJob struct {
	Delay       int      `json:"delay"`
	Given       []string `json:"given"`
	Model       string   `json:"model"`
	RepoGroupID int      `json:"repo_group_id"`
}

// WorkersSection configures each Augur worker process.
type WorkersSection struct {
	FacadeWorker      WorkerSettings `json:"facade_worker"`
	PullRequestWorker WorkerSettings `json:"pull_request_worker"`
	GitHubWorker      WorkerSettings `json:"github_worker"`
	InsightWorker     WorkerSettings `json:"insight_worker"`
	RepoInfoWorker    WorkerSettings `json:"repo_info_worker"`
}

// WorkerSettings is the per-worker block inside [WorkersSection].
// RepoDirectory is only used by the facade worker.
type WorkerSettings struct {
	Port          int    `json:"port"`
	Switch        int    `json:"switch"`
	Workers       int    `json:"workers"`
	RepoDirectory string `json:"repo_directory,omitempty"`
}
