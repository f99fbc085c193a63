package footballdata

import "sort"

type Resource string

type Action string

const (
	ResourceAreas        Resource = "areas"
	ResourceCompetitions Resource = "competitions"
)

const (
	ActionList      Action = "list"
	ActionGet       Action = "get"
	ActionStandings Action = "standings"
	ActionMatches   Action = "matches"
	ActionTeams     Action = "teams"
	ActionScorers   Action = "scorers"
)

// Endpoint describes one API endpoint. URL is relative to the base URL and
// may contain placeholders such as {code}. Filters lists the optional query
// parameters the endpoint accepts, as templates like "season={year}"; it is
// nil when the endpoint takes none.
type Endpoint struct {
	URL     string
	Filters []string
}

type ResourceAction struct {
	Resource Resource
	Action   Action
}

// resourceActions enumerates every entry of endpoints in declaration order.
var resourceActions = []ResourceAction{
	{ResourceAreas, ActionList},
	{ResourceAreas, ActionGet},
	{ResourceCompetitions, ActionList},
	{ResourceCompetitions, ActionGet},
	{ResourceCompetitions, ActionStandings},
	{ResourceCompetitions, ActionMatches},
	{ResourceCompetitions, ActionTeams},
	{ResourceCompetitions, ActionScorers},
}

// See https://docs.football-data.org/general/v4/index.html
var endpoints = map[Resource]map[Action]Endpoint{
	ResourceAreas: {
		ActionList: {URL: "/areas"},
		ActionGet:  {URL: "/areas/{id}"},
	},
	ResourceCompetitions: {
		ActionList: {
			URL:     "/competitions",
			Filters: []string{"areas={areas}"},
		},
		ActionGet: {URL: "/competitions/{code}"},
		ActionStandings: {
			URL:     "/competitions/{code}/standings",
			Filters: []string{"matchday={matchday}", "season={year}", "date={date}"},
		},
		ActionMatches: {
			URL: "/competitions/{code}/matches",
			Filters: []string{
				"dateFrom={dateFrom}",
				"dateTo={dateTo}",
				"stage={stage}",
				"status={status}",
				"matchday={matchday}",
				"group={group}",
				"season={year}",
			},
		},
		ActionTeams: {
			URL:     "/competitions/{code}/teams",
			Filters: []string{"season={year}"},
		},
		ActionScorers: {
			URL:     "/competitions/{code}/scorers",
			Filters: []string{"limit={limit}", "season={year}"},
		},
	},
}

// ResourceActions returns every known (resource, action) pair in the order
// the endpoints are declared.
func ResourceActions() []ResourceAction {
	out := make([]ResourceAction, len(resourceActions))
	copy(out, resourceActions)
	return out
}

func lookupEndpoint(resource Resource, action Action) (Endpoint, error) {
	actions, ok := endpoints[resource]
	if !ok {
		return Endpoint{}, &NotFoundError{
			Resource:    resource,
			Action:      action,
			Suggestions: suggest(string(resource), resourceNames()),
		}
	}

	endpoint, ok := actions[action]
	if !ok {
		return Endpoint{}, &NotFoundError{
			Resource:    resource,
			Action:      action,
			Suggestions: suggest(string(action), actionNames(actions)),
		}
	}
	return endpoint, nil
}

func resourceNames() []string {
	names := make([]string, 0, len(endpoints))
	for r := range endpoints {
		names = append(names, string(r))
	}
	sort.Strings(names)
	return names
}

func actionNames(actions map[Action]Endpoint) []string {
	names := make([]string, 0, len(actions))
	for a := range actions {
		names = append(names, string(a))
	}
	sort.Strings(names)
	return names
}
