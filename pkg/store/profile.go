package store

import (
	"github.com/nikogura/readme-forge/pkg/profile"
	"github.com/pkg/errors"
)

// ProfileStore is a store for a personal profile README.
type ProfileStore struct {
	*Store[profile.Data]
}

// NewProfileStore returns a store holding the default profile document.
func NewProfileStore(opts ...Option) (s *ProfileStore) {
	s = NewProfileStoreWith(profile.DefaultData(), opts...)
	return s
}

// NewProfileStoreWith returns a store holding d.
func NewProfileStoreWith(d profile.Data, opts ...Option) (s *ProfileStore) {
	d.Normalize()
	s = &ProfileStore{Store: New(d, profile.Render, profile.DefaultData, opts...)}
	return s
}

// UpdateData replaces one top-level section, e.g. "socials", with a copy of
// value. Set lists are deduplicated and missing or repeated ids replaced.
func (s *ProfileStore) UpdateData(section string, value any) (err error) {
	s.Mutate(func(d *profile.Data) bool {
		err = setSection(d, section, value)
		if err != nil {
			return false
		}
		d.Normalize()
		return true
	})
	return err
}

// UpdateNestedData replaces one key within a section, e.g. "header", "title".
func (s *ProfileStore) UpdateNestedData(section string, key string, value any) (err error) {
	s.Mutate(func(d *profile.Data) bool {
		err = setNested(d, section, key, value)
		if err != nil {
			return false
		}
		d.Normalize()
		return true
	})
	return err
}

// AddProject appends a blank project and returns its id.
func (s *ProfileStore) AddProject() (id string) {
	p := profile.NewProject()
	s.Update(func(d *profile.Data) {
		d.Projects = append(d.Projects, p)
	})

	id = p.ID
	return id
}

// RemoveProject deletes a project. It reports whether the id existed.
func (s *ProfileStore) RemoveProject(id string) (removed bool) {
	removed = s.Mutate(func(d *profile.Data) bool {
		return removeItem(&d.Projects, id)
	})
	return removed
}

// UpdateProject edits a project in place. It reports whether the id existed.
func (s *ProfileStore) UpdateProject(id string, fn func(p *profile.Project)) (updated bool) {
	updated = s.Mutate(func(d *profile.Data) bool {
		return updateItem(d.Projects, id, fn)
	})
	return updated
}

// AddSkill adds name to a skill group unless it is already present.
func (s *ProfileStore) AddSkill(group profile.SkillGroup, name string) (added bool, err error) {
	s.Mutate(func(d *profile.Data) bool {
		list := d.SkillList(group)
		if list == nil {
			err = errors.Wrapf(ErrUnknownField, "skill group %q", group)
			return false
		}
		added = addValue(list, name)
		return added
	})
	return added, err
}

// RemoveSkill removes name from a skill group.
func (s *ProfileStore) RemoveSkill(group profile.SkillGroup, name string) (removed bool, err error) {
	s.Mutate(func(d *profile.Data) bool {
		list := d.SkillList(group)
		if list == nil {
			err = errors.Wrapf(ErrUnknownField, "skill group %q", group)
			return false
		}
		removed = removeValue(list, name)
		return removed
	})
	return removed, err
}
