// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import "github.com/MKhiriev/augur-config/models"

const housekeeperJobDelay = 150000

func defaultCache() models.CacheSection {
	return models.CacheSection{
		Config: models.CacheConfig{
			DataDir: "runtime/cache/",
			LockDir: "runtime/cache/",
			Type:    "file",
		},
	}
}

func defaultServer() models.ServerSection {
	return models.ServerSection{
		Host:        "0.0.0.0",
		Port:        "5000",
		Workers:     "4",
		CacheExpire: "3600",
	}
}

func defaultFacade() models.FacadeSwitches {
	return models.FacadeSwitches{
		CheckUpdates:           1,
		CloneRepos:             1,
		CreateXLSXSummaryFiles: 1,
		DeleteMarkedRepos:      0,
		FixAffiliations:        1,
		ForceAnalysis:          1,
		ForceInvalidateCaches:  0,
		ForceUpdates:           1,
		LimitedRun:             0,
		Multithreaded:          0,
		NukeStoredAffiliations: 0,
		PullRepos:              1,
		RebuildCaches:          1,
		RunAnalysis:            1,
	}
}

func defaultGHTorrent() models.GHTorrentDefaults {
	return models.GHTorrentDefaults{
		Host: "localhost",
		Name: "ghtorrent",
		Pass: "password",
		Port: "3306",
		User: "augur",
	}
}

func defaultDevelopment() models.DevelopmentSection {
	return models.DevelopmentSection{
		Developer:   "0",
		Interactive: "0",
	}
}

func defaultPlugins() models.Plugins {
	return models.Plugins{}
}

func defaultHousekeeper() models.HousekeeperSection {
	jobModels := []string{"issues", "repo_info", "pull_requests"}

	jobs := make([]models.HousekeeperJob, 0, len(jobModels))
	for _, model := range jobModels {
		jobs = append(jobs, models.HousekeeperJob{
			Delay:       housekeeperJobDelay,
			Given:       []string{"git_url"},
			Model:       model,
			RepoGroupID: 0,
		})
	}

	return models.HousekeeperSection{Jobs: jobs}
}

func defaultWorkers() models.WorkersSection {
	worker := func(port int) models.WorkerSettings {
		return models.WorkerSettings{Port: port, Switch: 0, Workers: 1}
	}

	facade := worker(51246)
	// expanded by the worker at startup, not here
	facade.RepoDirectory = "$HOME/augur_repos"

	return models.WorkersSection{
		FacadeWorker:      facade,
		PullRequestWorker: worker(51252),
		GitHubWorker:      worker(51238),
		InsightWorker:     worker(51244),
		RepoInfoWorker:    worker(51242),
	}
}
