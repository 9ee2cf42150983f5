package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// SkillInfo is the metadata read from a skill directory's SKILL.md.
type SkillInfo struct {
	Name        string
	Description string
	License     string
	Path        string
}

// HookInfo is one discovered hook script.
type HookInfo struct {
	Name string
	Kind string
	Path string
}

// DiscoveredStack pairs a stack with its provenance: "inline" for entries
// living in the merged config, otherwise the path of the stack file.
type DiscoveredStack struct {
	Name   string
	Entry  StackEntry
	Source string
}

// SourceInline tags stacks that come from the config document itself.
const SourceInline = "inline"

func (s *Store) stackRoots() []string {
	return []string{
		filepath.Join(s.globalDir, "stacks"),
		filepath.Join(s.workDir, ".relay", "stacks"),
	}
}

func (s *Store) skillRoots() []string {
	return []string{
		filepath.Join(s.globalDir, "skills"),
		filepath.Join(s.workDir, ".relay", "skills"),
	}
}

func (s *Store) hookRoots() []string {
	return []string{
		filepath.Join(s.globalDir, "hooks"),
		filepath.Join(s.workDir, ".relay", "hooks"),
	}
}

// DiscoverStacks unions the config's inline stacks with stack files under
// the two search roots. Inline entries win name collisions. The result is
// sorted by name. Unreadable or malformed files are skipped.
func (s *Store) DiscoverStacks(cfg *Config) []DiscoveredStack {
	var stacks []DiscoveredStack
	seen := map[string]bool{}

	for name, entry := range cfg.Stacks {
		stacks = append(stacks, DiscoveredStack{Name: name, Entry: entry, Source: SourceInline})
		seen[name] = true
	}

	for _, root := range s.stackRoots() {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, de := range entries {
			if de.IsDir() || !strings.HasSuffix(de.Name(), ".json") {
				continue
			}
			name := strings.TrimSuffix(de.Name(), ".json")
			if seen[name] {
				continue
			}
			path := filepath.Join(root, de.Name())
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			var entry StackEntry
			if err := json.Unmarshal(jsonc.ToJSON(data), &entry); err != nil {
				continue
			}
			stacks = append(stacks, DiscoveredStack{Name: name, Entry: entry, Source: path})
			seen[name] = true
		}
	}

	sort.Slice(stacks, func(i, j int) bool { return stacks[i].Name < stacks[j].Name })
	return stacks
}

// DiscoverSkills scans both skill roots for directories containing a
// SKILL.md and returns them sorted by name.
func (s *Store) DiscoverSkills() []SkillInfo {
	var skills []SkillInfo

	for _, root := range s.skillRoots() {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, de := range entries {
			if !de.IsDir() {
				continue
			}
			dir := filepath.Join(root, de.Name())
			info, err := parseSkillFile(filepath.Join(dir, "SKILL.md"), dir)
			if err != nil {
				continue
			}
			skills = append(skills, info)
		}
	}

	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills
}

type skillFrontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	License     string `yaml:"license"`
}

// parseSkillFile reads the YAML frontmatter block between the leading "---"
// delimiters. A missing name falls back to the directory name.
func parseSkillFile(skillFile, skillDir string) (SkillInfo, error) {
	data, err := os.ReadFile(skillFile)
	if err != nil {
		return SkillInfo{}, err
	}

	var fm skillFrontmatter
	content := string(data)
	if strings.HasPrefix(content, "---") {
		if end := strings.Index(content[3:], "---"); end >= 0 {
			// Bad YAML just means empty metadata, not a failed skill.
			_ = yaml.Unmarshal([]byte(content[3:3+end]), &fm)
		}
	}
	if fm.Name == "" {
		fm.Name = filepath.Base(skillDir)
	}

	return SkillInfo{
		Name:        fm.Name,
		Description: fm.Description,
		License:     fm.License,
		Path:        skillDir,
	}, nil
}

// hookKinds is checked in order; the first substring hit wins.
var hookKinds = []string{"pre-task", "post-task", "pre-tool", "post-tool", "on-error"}

// ClassifyHook infers a hook kind from its filename.
func ClassifyHook(name string) string {
	for _, kind := range hookKinds {
		if strings.Contains(name, kind) {
			return kind
		}
	}
	return "unknown"
}

// DiscoverHooks collects .js/.ts/.mjs files up to two directory levels below
// each hook root, sorted by name.
func (s *Store) DiscoverHooks() []HookInfo {
	var hooks []HookInfo

	for _, root := range s.hookRoots() {
		walkHookDir(root, root, 0, &hooks)
	}

	sort.Slice(hooks, func(i, j int) bool { return hooks[i].Name < hooks[j].Name })
	return hooks
}

func walkHookDir(root, dir string, depth int, hooks *[]HookInfo) {
	if depth > 1 {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, de := range entries {
		path := filepath.Join(dir, de.Name())
		if de.IsDir() {
			walkHookDir(root, path, depth+1, hooks)
			continue
		}
		switch filepath.Ext(de.Name()) {
		case ".js", ".ts", ".mjs":
		default:
			continue
		}
		name := strings.TrimSuffix(de.Name(), filepath.Ext(de.Name()))
		*hooks = append(*hooks, HookInfo{
			Name: name,
			Kind: ClassifyHook(name),
			Path: path,
		})
	}
}
