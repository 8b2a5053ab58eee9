package store

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/nikogura/readme-forge/pkg/repo"
	"github.com/pkg/errors"
)

// ImportToken identifies one import run. Only the latest token may apply.
type ImportToken uint64

// RepoStore is a store for a project README.
type RepoStore struct {
	*Store[repo.Data]

	// importSeq is only touched inside Mutate, under the store lock.
	importSeq    ImportToken
	generatingAI atomic.Bool
}

// NewRepoStore returns a store holding the default project document.
func NewRepoStore(opts ...Option) (s *RepoStore) {
	s = NewRepoStoreWith(repo.DefaultData(), opts...)
	return s
}

// NewRepoStoreWith returns a store holding d.
func NewRepoStoreWith(d repo.Data, opts ...Option) (s *RepoStore) {
	d.Normalize()
	s = &RepoStore{Store: New(d, repo.Render, repo.DefaultData, opts...)}
	return s
}

// UpdateData replaces one top-level section, e.g. "license", with a copy of
// value. Set lists are deduplicated and missing or repeated ids replaced.
func (s *RepoStore) UpdateData(section string, value any) (err error) {
	s.Mutate(func(d *repo.Data) bool {
		err = setSection(d, section, value)
		if err != nil {
			return false
		}
		d.Normalize()
		return true
	})
	return err
}

// UpdateNestedData replaces one key within a section, e.g. "projectInfo", "name".
func (s *RepoStore) UpdateNestedData(section string, key string, value any) (err error) {
	s.Mutate(func(d *repo.Data) bool {
		err = setNested(d, section, key, value)
		if err != nil {
			return false
		}
		d.Normalize()
		return true
	})
	return err
}

// AddBadge appends b and returns its id. An empty or duplicate id is replaced.
func (s *RepoStore) AddBadge(b repo.Badge) (id string) {
	s.Update(func(d *repo.Data) {
		if b.ID == "" || indexOf(d.ProjectInfo.Badges, b.ID) >= 0 {
			b.ID = uuid.NewString()
		}
		d.ProjectInfo.Badges = append(d.ProjectInfo.Badges, b)
	})

	id = b.ID
	return id
}

// RemoveBadge deletes a badge by id.
func (s *RepoStore) RemoveBadge(id string) (removed bool) {
	removed = s.Mutate(func(d *repo.Data) bool {
		return removeItem(&d.ProjectInfo.Badges, id)
	})
	return removed
}

// UpdateBadge edits a badge in place.
func (s *RepoStore) UpdateBadge(id string, fn func(b *repo.Badge)) (updated bool) {
	updated = s.Mutate(func(d *repo.Data) bool {
		return updateItem(d.ProjectInfo.Badges, id, fn)
	})
	return updated
}

// AddFeature appends a blank feature and returns its id.
func (s *RepoStore) AddFeature() (id string) {
	f := repo.NewFeature()
	s.Update(func(d *repo.Data) {
		d.Features.Items = append(d.Features.Items, f)
	})

	id = f.ID
	return id
}

// RemoveFeature deletes a feature by id.
func (s *RepoStore) RemoveFeature(id string) (removed bool) {
	removed = s.Mutate(func(d *repo.Data) bool {
		return removeItem(&d.Features.Items, id)
	})
	return removed
}

// UpdateFeature edits a feature in place.
func (s *RepoStore) UpdateFeature(id string, fn func(f *repo.Feature)) (updated bool) {
	updated = s.Mutate(func(d *repo.Data) bool {
		return updateItem(d.Features.Items, id, fn)
	})
	return updated
}

// AddCodeExample appends a blank usage example and returns its id.
func (s *RepoStore) AddCodeExample() (id string) {
	c := repo.NewCodeExample()
	s.Update(func(d *repo.Data) {
		d.Usage.Examples = append(d.Usage.Examples, c)
	})

	id = c.ID
	return id
}

// RemoveCodeExample deletes a usage example by id.
func (s *RepoStore) RemoveCodeExample(id string) (removed bool) {
	removed = s.Mutate(func(d *repo.Data) bool {
		return removeItem(&d.Usage.Examples, id)
	})
	return removed
}

// UpdateCodeExample edits a usage example in place.
func (s *RepoStore) UpdateCodeExample(id string, fn func(c *repo.CodeExample)) (updated bool) {
	updated = s.Mutate(func(d *repo.Data) bool {
		return updateItem(d.Usage.Examples, id, fn)
	})
	return updated
}

// AddEndpoint appends a default endpoint and returns its id.
func (s *RepoStore) AddEndpoint() (id string) {
	e := repo.NewEndpoint()
	s.Update(func(d *repo.Data) {
		d.APIDocs.Endpoints = append(d.APIDocs.Endpoints, e)
	})

	id = e.ID
	return id
}

// RemoveEndpoint deletes an endpoint by id.
func (s *RepoStore) RemoveEndpoint(id string) (removed bool) {
	removed = s.Mutate(func(d *repo.Data) bool {
		return removeItem(&d.APIDocs.Endpoints, id)
	})
	return removed
}

// UpdateEndpoint edits an endpoint in place.
func (s *RepoStore) UpdateEndpoint(id string, fn func(e *repo.APIEndpoint)) (updated bool) {
	updated = s.Mutate(func(d *repo.Data) bool {
		return updateItem(d.APIDocs.Endpoints, id, fn)
	})
	return updated
}

// AddConfigOption appends a row to the selected configuration table.
func (s *RepoStore) AddConfigOption(list repo.ConfigList) (id string, err error) {
	o := repo.NewConfigOption()
	s.Mutate(func(d *repo.Data) bool {
		items := d.ConfigItems(list)
		if items == nil {
			err = errors.Wrapf(ErrUnknownField, "configuration list %q", list)
			return false
		}
		*items = append(*items, o)
		return true
	})
	if err != nil {
		return id, err
	}

	id = o.ID
	return id, err
}

// RemoveConfigOption deletes a row from the selected configuration table.
func (s *RepoStore) RemoveConfigOption(list repo.ConfigList, id string) (removed bool) {
	removed = s.Mutate(func(d *repo.Data) bool {
		items := d.ConfigItems(list)
		return items != nil && removeItem(items, id)
	})
	return removed
}

// UpdateConfigOption edits a row of the selected configuration table.
func (s *RepoStore) UpdateConfigOption(list repo.ConfigList, id string, fn func(o *repo.ConfigOption)) (updated bool) {
	updated = s.Mutate(func(d *repo.Data) bool {
		items := d.ConfigItems(list)
		return items != nil && updateItem(*items, id, fn)
	})
	return updated
}

// AddScreenshot appends a blank screenshot and returns its id.
func (s *RepoStore) AddScreenshot() (id string) {
	shot := repo.NewScreenshot()
	s.Update(func(d *repo.Data) {
		d.Screenshots.Items = append(d.Screenshots.Items, shot)
	})

	id = shot.ID
	return id
}

// RemoveScreenshot deletes a screenshot by id.
func (s *RepoStore) RemoveScreenshot(id string) (removed bool) {
	removed = s.Mutate(func(d *repo.Data) bool {
		return removeItem(&d.Screenshots.Items, id)
	})
	return removed
}

// UpdateScreenshot edits a screenshot in place.
func (s *RepoStore) UpdateScreenshot(id string, fn func(shot *repo.Screenshot)) (updated bool) {
	updated = s.Mutate(func(d *repo.Data) bool {
		return updateItem(d.Screenshots.Items, id, fn)
	})
	return updated
}

// AddRoadmapItem appends an open roadmap entry and returns its id.
func (s *RepoStore) AddRoadmapItem() (id string) {
	r := repo.NewRoadmapItem()
	s.Update(func(d *repo.Data) {
		d.Extras.Roadmap = append(d.Extras.Roadmap, r)
	})

	id = r.ID
	return id
}

// RemoveRoadmapItem deletes a roadmap entry by id.
func (s *RepoStore) RemoveRoadmapItem(id string) (removed bool) {
	removed = s.Mutate(func(d *repo.Data) bool {
		return removeItem(&d.Extras.Roadmap, id)
	})
	return removed
}

// UpdateRoadmapItem edits a roadmap entry in place.
func (s *RepoStore) UpdateRoadmapItem(id string, fn func(r *repo.RoadmapItem)) (updated bool) {
	updated = s.Mutate(func(d *repo.Data) bool {
		return updateItem(d.Extras.Roadmap, id, fn)
	})
	return updated
}

// AddFAQItem appends an empty question and returns its id.
func (s *RepoStore) AddFAQItem() (id string) {
	q := repo.NewFAQItem()
	s.Update(func(d *repo.Data) {
		d.Extras.FAQ = append(d.Extras.FAQ, q)
	})

	id = q.ID
	return id
}

// RemoveFAQItem deletes a question by id.
func (s *RepoStore) RemoveFAQItem(id string) (removed bool) {
	removed = s.Mutate(func(d *repo.Data) bool {
		return removeItem(&d.Extras.FAQ, id)
	})
	return removed
}

// UpdateFAQItem edits a question in place.
func (s *RepoStore) UpdateFAQItem(id string, fn func(q *repo.FAQItem)) (updated bool) {
	updated = s.Mutate(func(d *repo.Data) bool {
		return updateItem(d.Extras.FAQ, id, fn)
	})
	return updated
}

// AddTechStack adds a skill-icons slug unless already present.
func (s *RepoStore) AddTechStack(slug string) (added bool) {
	added = s.Mutate(func(d *repo.Data) bool {
		return addValue(&d.TechStack, slug)
	})
	return added
}

// RemoveTechStack removes a skill-icons slug.
func (s *RepoStore) RemoveTechStack(slug string) (removed bool) {
	removed = s.Mutate(func(d *repo.Data) bool {
		return removeValue(&d.TechStack, slug)
	})
	return removed
}

// AddPrerequisite adds an installation prerequisite unless already present.
func (s *RepoStore) AddPrerequisite(prereq string) (added bool) {
	added = s.Mutate(func(d *repo.Data) bool {
		return addValue(&d.Installation.Prerequisites, prereq)
	})
	return added
}

// RemovePrerequisite removes an installation prerequisite.
func (s *RepoStore) RemovePrerequisite(prereq string) (removed bool) {
	removed = s.Mutate(func(d *repo.Data) bool {
		return removeValue(&d.Installation.Prerequisites, prereq)
	})
	return removed
}

// BeginImport resets the document and invalidates every earlier import
// token. Results of older imports are discarded by ApplyIfCurrent.
func (s *RepoStore) BeginImport() (token ImportToken) {
	s.Update(func(d *repo.Data) {
		*d = repo.DefaultData()
		s.importSeq++
		token = s.importSeq
	})
	return token
}

// ApplyIfCurrent runs fn against the document only if token belongs to the
// latest import. It reports whether fn ran.
func (s *RepoStore) ApplyIfCurrent(token ImportToken, fn func(d *repo.Data)) (applied bool) {
	applied = s.Mutate(func(d *repo.Data) bool {
		if token != s.importSeq {
			return false
		}
		fn(d)
		return true
	})
	return applied
}

// SetGeneratingAI records whether AI generation is in flight.
func (s *RepoStore) SetGeneratingAI(generating bool) {
	s.generatingAI.Store(generating)
}

// GeneratingAI reports whether AI generation is in flight.
func (s *RepoStore) GeneratingAI() (generating bool) {
	generating = s.generatingAI.Load()
	return generating
}
