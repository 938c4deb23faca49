package service

import (
	"time"

	"github.com/ngocdev/portfolio-api/internal/models"
	"github.com/ngocdev/portfolio-api/internal/repository"
)

// SkillService serves the skills catalog. Skill slugs are derived
// from the language-selected title on the fly and never persisted.
type SkillService struct {
	skills repository.SkillRepository
}

// NewSkillService creates the skill service.
func NewSkillService(skills repository.SkillRepository) *SkillService {
	return &SkillService{skills: skills}
}

// SkillItem is the list projection with a language-selected title
// and description.
type SkillItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	IconURL      *string   `json:"icon_url"`
	Highlighted  bool      `json:"highlighted"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SkillDetail is the detail projection. RelatedProjects is reserved
// for a future projects module and always serializes as an empty
// list.
type SkillDetail struct {
	SkillItem
	RelatedProjects []struct{} `json:"related_projects"`
}

// List returns all skills in display order.
func (s *SkillService) List(lang string) ([]SkillItem, error) {
	skills, err := s.skills.List()
	if err != nil {
		return nil, err
	}
	items := make([]SkillItem, 0, len(skills))
	for _, skill := range skills {
		items = append(items, skillItem(&skill, lang))
	}
	return items, nil
}

// GetByID returns a single skill.
func (s *SkillService) GetByID(id, lang string) (*SkillDetail, error) {
	skill, err := s.skills.GetByID(id)
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, ErrNotFound
	}
	return skillDetail(skill, lang), nil
}

// GetBySlug returns the first skill, in display order, whose derived
// slug for the requested language matches. The same skill can answer
// to different slugs per language.
func (s *SkillService) GetBySlug(slug, lang string) (*SkillDetail, error) {
	skills, err := s.skills.List()
	if err != nil {
		return nil, err
	}
	for i := range skills {
		title := localized(lang, skills[i].TitleVI, skills[i].TitleEN)
		if Slugify(title) == slug {
			return skillDetail(&skills[i], lang), nil
		}
	}
	return nil, ErrNotFound
}

// CreateSkillInput carries a new skill.
type CreateSkillInput struct {
	TitleVI       string
	TitleEN       string
	DescriptionVI string
	DescriptionEN string
	IconURL       *string
	Highlighted   bool
	DisplayOrder  int
}

// Create inserts a skill.
func (s *SkillService) Create(input CreateSkillInput) (*models.Skill, error) {
	skill := models.Skill{
		TitleVI:       input.TitleVI,
		TitleEN:       input.TitleEN,
		DescriptionVI: input.DescriptionVI,
		DescriptionEN: input.DescriptionEN,
		IconURL:       input.IconURL,
		Highlighted:   input.Highlighted,
		DisplayOrder:  input.DisplayOrder,
	}
	if err := s.skills.Create(&skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// UpdateSkillInput carries a partial update; nil fields stay
// untouched.
type UpdateSkillInput struct {
	TitleVI       *string
	TitleEN       *string
	DescriptionVI *string
	DescriptionEN *string
	IconURL       *string
	Highlighted   *bool
	DisplayOrder  *int
}

// Update applies a partial update.
func (s *SkillService) Update(id string, input UpdateSkillInput) (*models.Skill, error) {
	skill, err := s.skills.GetByID(id)
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, ErrNotFound
	}

	if input.TitleVI != nil {
		skill.TitleVI = *input.TitleVI
	}
	if input.TitleEN != nil {
		skill.TitleEN = *input.TitleEN
	}
	if input.DescriptionVI != nil {
		skill.DescriptionVI = *input.DescriptionVI
	}
	if input.DescriptionEN != nil {
		skill.DescriptionEN = *input.DescriptionEN
	}
	if input.IconURL != nil {
		skill.IconURL = input.IconURL
	}
	if input.Highlighted != nil {
		skill.Highlighted = *input.Highlighted
	}
	if input.DisplayOrder != nil {
		skill.DisplayOrder = *input.DisplayOrder
	}

	if err := s.skills.Update(skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// Delete removes a skill.
func (s *SkillService) Delete(id string) error {
	skill, err := s.skills.GetByID(id)
	if err != nil {
		return err
	}
	if skill == nil {
		return ErrNotFound
	}
	return s.skills.Delete(id)
}

func skillItem(skill *models.Skill, lang string) SkillItem {
	title := localized(lang, skill.TitleVI, skill.TitleEN)
	return SkillItem{
		ID:           skill.ID,
		Title:        title,
		Slug:         Slugify(title),
		Description:  localized(lang, skill.DescriptionVI, skill.DescriptionEN),
		IconURL:      skill.IconURL,
		Highlighted:  skill.Highlighted,
		DisplayOrder: skill.DisplayOrder,
		CreatedAt:    skill.CreatedAt,
		UpdatedAt:    skill.UpdatedAt,
	}
}

func skillDetail(skill *models.Skill, lang string) *SkillDetail {
	return &SkillDetail{
		SkillItem:       skillItem(skill, lang),
		RelatedProjects: []struct{}{},
	}
}
