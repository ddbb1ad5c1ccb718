package main

import (
	"github.com/MKhiriev/augur-config/internal/cli"
	"github.com/MKhiriev/augur-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cli.Execute(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
