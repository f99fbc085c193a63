package footballdata_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/omarshaarawi/footballdata/pkg/footballdata"
)

// Fetches the Premier League teams for the 2022 season.
func Example() {
	c, err := footballdata.NewClientFromEnv()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		return
	}

	endpoint, err := c.Endpoint(footballdata.ResourceCompetitions, footballdata.ActionTeams)
	if err != nil {
		slog.Error("Error resolving endpoint", "error", err)
		return
	}

	pl, err := footballdata.Fill(endpoint, map[string]string{"code": "PL"})
	if err != nil {
		slog.Error("Error filling endpoint", "error", err)
		return
	}

	resp, err := c.Request(context.Background(), pl, map[string]string{"season": "2022"})
	if err != nil {
		slog.Error("Error requesting teams", "error", err)
		return
	}

	var teams struct {
		Teams []struct {
			Name string `json:"name"`
		} `json:"teams"`
	}
	if err := json.Unmarshal(resp.Body, &teams); err != nil {
		slog.Error("Error decoding teams", "error", err)
		return
	}
	for _, team := range teams.Teams {
		fmt.Println(team.Name)
	}
}

func ExampleFill() {
	url, _ := footballdata.Fill(footballdata.BaseURL+"/competitions/{code}/scorers", map[string]string{"code": "PL"})
	fmt.Println(url)
	// Output: http://api.football-data.org/v4/competitions/PL/scorers
}

func ExampleFilterValues() {
	values, _ := footballdata.FilterValues(
		[]string{"limit={limit}", "season={year}"},
		map[string]string{"year": "2022"},
	)
	fmt.Println(values.Encode())
	// Output: season=2022
}
