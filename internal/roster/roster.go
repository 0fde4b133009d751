// Package roster loads and validates the team roster file. The roster is
// the single place member identity is resolved; downstream code only ever
// sees display names.
package roster

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brdge/sprintplan/schema"
)

// Default coefficients applied when a team omits them.
const (
	DefaultPointCapacity = 1.0
	DefaultLoadFactor    = 0.8
)

// Roster is the validated set of teams from one roster file.
type Roster struct {
	Teams []schema.Team
}

// TeamByName returns the team with the given name, matched
// case-insensitively, or an error naming the valid choices.
func (r *Roster) TeamByName(name string) (*schema.Team, error) {
	for i := range r.Teams {
		if strings.EqualFold(r.Teams[i].Name, name) {
			return &r.Teams[i], nil
		}
	}
	return nil, fmt.Errorf("unknown team '%s' (valid teams: %s)", name, strings.Join(r.Names(), ", "))
}

// Names returns the team names in sorted order.
func (r *Roster) Names() []string {
	names := make([]string, 0, len(r.Teams))
	for i := range r.Teams {
		names = append(names, r.Teams[i].Name)
	}
	sort.Strings(names)
	return names
}

type memberRaw struct {
	Name       string  `yaml:"name"`
	HRName     string  `yaml:"hr_name"`
	OnCallName string  `yaml:"oncall_name"`
	StartDate  string  `yaml:"start_date"`
	LeaveDate  string  `yaml:"leave_date"`
	StartPct   float64 `yaml:"start_pct"`
}

type teamRaw struct {
	Name             string      `yaml:"name"`
	TrackerKey       string      `yaml:"tracker_key"`
	PointsPerEpic    float64     `yaml:"points_per_epic"`
	Manager          string      `yaml:"manager"`
	Members          []memberRaw `yaml:"members"`
	PeopleOfInterest []string    `yaml:"people_of_interest"`
	PointCapacity    float64     `yaml:"point_capacity"`
	LoadFactor       float64     `yaml:"load_factor"`
	EngineeringSplit float64     `yaml:"engineering_split"`
	AbsencesCanvas   string      `yaml:"absences_canvas"`
	CapacityCanvas   string      `yaml:"capacity_canvas"`
	SupportCanvas    string      `yaml:"support_canvas"`
	L1Rotation       string      `yaml:"l1_rotation"`
	L2Rotation       string      `yaml:"l2_rotation"`
	Socials          []string    `yaml:"socials"`
}

type rosterRaw struct {
	Teams []teamRaw `yaml:"teams"`
}

// Load reads and validates a roster file. Any malformed entry is a hard
// error; a roster that half-loads would silently misreport capacity.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roster: read %s: %w", path, err)
	}

	var raw rosterRaw
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("roster: parse %s: %w", path, err)
	}
	if len(raw.Teams) == 0 {
		return nil, fmt.Errorf("roster: %s defines no teams", path)
	}

	roster := &Roster{Teams: make([]schema.Team, 0, len(raw.Teams))}
	seen := make(map[string]struct{}, len(raw.Teams))
	for i := range raw.Teams {
		team, err := convertTeam(&raw.Teams[i])
		if err != nil {
			return nil, fmt.Errorf("roster: team '%s': %w", raw.Teams[i].Name, err)
		}
		key := strings.ToLower(team.Name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("roster: duplicate team name '%s'", team.Name)
		}
		seen[key] = struct{}{}
		roster.Teams = append(roster.Teams, *team)
	}
	return roster, nil
}

func convertTeam(raw *teamRaw) (*schema.Team, error) {
	if strings.TrimSpace(raw.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(raw.Members) == 0 {
		return nil, fmt.Errorf("at least one member is required")
	}

	team := &schema.Team{
		Name:             raw.Name,
		TrackerKey:       raw.TrackerKey,
		PointsPerEpic:    raw.PointsPerEpic,
		Manager:          raw.Manager,
		PeopleOfInterest: raw.PeopleOfInterest,
		PointCapacity:    raw.PointCapacity,
		LoadFactor:       raw.LoadFactor,
		EngineeringSplit: raw.EngineeringSplit,
		AbsencesCanvas:   raw.AbsencesCanvas,
		CapacityCanvas:   raw.CapacityCanvas,
		SupportCanvas:    raw.SupportCanvas,
		L1Rotation:       raw.L1Rotation,
		L2Rotation:       raw.L2Rotation,
	}

	if team.PointCapacity == 0 {
		team.PointCapacity = DefaultPointCapacity
	}
	if team.PointCapacity < 0 {
		return nil, fmt.Errorf("point_capacity cannot be negative (received %.2f)", team.PointCapacity)
	}
	if team.LoadFactor == 0 {
		team.LoadFactor = DefaultLoadFactor
	}
	if team.LoadFactor < 0 || team.LoadFactor > 1 {
		return nil, fmt.Errorf("load_factor must be within (0, 1] (received %.2f)", team.LoadFactor)
	}
	if team.EngineeringSplit < 0 || team.EngineeringSplit > 1 {
		return nil, fmt.Errorf("engineering_split must be within [0, 1] (received %.2f)", team.EngineeringSplit)
	}
	if team.PointsPerEpic < 0 {
		return nil, fmt.Errorf("points_per_epic cannot be negative (received %.2f)", team.PointsPerEpic)
	}

	for _, s := range raw.Socials {
		d, err := schema.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("social date '%s': %w", s, err)
		}
		team.Socials = append(team.Socials, d)
	}

	seen := make(map[string]struct{}, len(raw.Members))
	for i := range raw.Members {
		member, err := convertMember(&raw.Members[i])
		if err != nil {
			return nil, fmt.Errorf("member '%s': %w", raw.Members[i].Name, err)
		}
		if _, dup := seen[member.Name]; dup {
			return nil, fmt.Errorf("duplicate member name '%s'", member.Name)
		}
		seen[member.Name] = struct{}{}
		team.Members = append(team.Members, *member)
	}
	return team, nil
}

func convertMember(raw *memberRaw) (*schema.Member, error) {
	if strings.TrimSpace(raw.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}

	member := &schema.Member{
		Name:       raw.Name,
		HRName:     raw.HRName,
		OnCallName: raw.OnCallName,
		StartPct:   raw.StartPct,
	}
	// Absent identity aliases fall back to the display name.
	if member.HRName == "" {
		member.HRName = member.Name
	}
	if member.OnCallName == "" {
		member.OnCallName = member.Name
	}

	var err error
	if raw.StartDate != "" {
		if member.StartDate, err = schema.ParseDate(raw.StartDate); err != nil {
			return nil, fmt.Errorf("start_date '%s': %w", raw.StartDate, err)
		}
	}
	if raw.LeaveDate != "" {
		if member.LeaveDate, err = schema.ParseDate(raw.LeaveDate); err != nil {
			return nil, fmt.Errorf("leave_date '%s': %w", raw.LeaveDate, err)
		}
	}
	if member.HasStartDate() && member.HasLeaveDate() && !member.LeaveDate.After(member.StartDate) {
		return nil, fmt.Errorf("leave_date %s must be after start_date %s",
			schema.FormatDate(member.LeaveDate), schema.FormatDate(member.StartDate))
	}

	if member.StartPct == 0 {
		member.StartPct = 1.0
	}
	if member.StartPct <= 0 || member.StartPct > 1 {
		return nil, fmt.Errorf("start_pct must be within (0, 1] (received %.2f)", member.StartPct)
	}
	return member, nil
}
