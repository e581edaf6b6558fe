package resolve

// DetectConflicts groups direct and transitive dependencies by
// group:artifact and reports every group reachable at more than one distinct
// declared version. Absent versions are recorded as occurrences but ignored
// for the distinct-version count. Output order follows first sighting.
func DetectConflicts(direct []Dependency, transitive []TransitiveDependency) []Conflict {
	occurrences := make(map[string][]Occurrence)
	var order []string

	add := func(ga string, occ Occurrence) {
		if _, seen := occurrences[ga]; !seen {
			order = append(order, ga)
		}
		occurrences[ga] = append(occurrences[ga], occ)
	}

	for _, d := range direct {
		add(d.GA(), Occurrence{Version: d.Version, Origin: "direct", Scope: d.Scope})
	}
	for _, td := range transitive {
		add(td.GA(), Occurrence{Version: td.Version, Origin: "transitive", Via: td.Via, Scope: td.Scope})
	}

	var conflicts []Conflict
	for _, ga := range order {
		occs := occurrences[ga]

		var versions []string
		seen := make(map[string]bool)
		for _, o := range occs {
			if o.Version == "" || seen[o.Version] {
				continue
			}
			seen[o.Version] = true
			versions = append(versions, o.Version)
		}

		if len(versions) > 1 {
			conflicts = append(conflicts, Conflict{
				Artifact:    ga,
				Versions:    versions,
				Occurrences: occs,
			})
		}
	}
	return conflicts
}
