package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/diegoclair/daily-report-bot/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

type rosterFile struct {
	Members []entity.Member `yaml:"members"`
}

// LoadRoster reads the team expected to report daily. The YAML file wins
// over the inline "id:Name,id:Name" list when both are set.
func LoadRoster(path, inline string) ([]entity.Member, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read roster file: %w", err)
		}
		return ParseRosterYAML(data)
	}
	return ParseRosterList(inline)
}

func ParseRosterYAML(data []byte) ([]entity.Member, error) {
	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}
	return normalizeRoster(file.Members)
}

func ParseRosterList(list string) ([]entity.Member, error) {
	var members []entity.Member
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		id, name, found := strings.Cut(item, ":")
		if !found {
			name = id
		}
		members = append(members, entity.Member{ID: id, Name: name})
	}
	return normalizeRoster(members)
}

// normalizeRoster trims entries and rejects duplicate or empty ids,
// keeping the configured order.
func normalizeRoster(members []entity.Member) ([]entity.Member, error) {
	seen := make(map[string]bool, len(members))
	res := make([]entity.Member, 0, len(members))
	for _, m := range members {
		m.ID = strings.TrimSpace(m.ID)
		m.Name = strings.TrimSpace(m.Name)
		if m.ID == "" {
			return nil, fmt.Errorf("roster member %q has no id", m.Name)
		}
		if seen[m.ID] {
			return nil, fmt.Errorf("duplicate roster member id %q", m.ID)
		}
		seen[m.ID] = true
		if m.Name == "" {
			m.Name = m.ID
		}
		res = append(res, m)
	}
	return res, nil
}
