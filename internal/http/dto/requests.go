package dto

import (
	"time"

	"github.com/newsletter-studio/backend/internal/models"
	"github.com/newsletter-studio/backend/internal/services"
)

type SignupRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Campaigns

type CreateCampaignRequest struct {
	Name                string  `json:"name"`
	Description         *string `json:"description,omitempty"`
	AudienceDescription *string `json:"audience_description,omitempty"`
	SenderName          *string `json:"sender_name,omitempty"`
	SenderEmail         *string `json:"sender_email,omitempty"`
	DefaultLanguage     *string `json:"default_language,omitempty"`
}

func (r CreateCampaignRequest) ToModel() *models.Campaign {
	return &models.Campaign{
		Name:                r.Name,
		Description:         r.Description,
		AudienceDescription: r.AudienceDescription,
		SenderName:          r.SenderName,
		SenderEmail:         r.SenderEmail,
		DefaultLanguage:     r.DefaultLanguage,
	}
}

// UpdateCampaignRequest uses pointer fields throughout: an absent key is
// nil and leaves the stored value untouched.
type UpdateCampaignRequest struct {
	Name                *string `json:"name,omitempty"`
	Description         *string `json:"description,omitempty"`
	AudienceDescription *string `json:"audience_description,omitempty"`
	SenderName          *string `json:"sender_name,omitempty"`
	SenderEmail         *string `json:"sender_email,omitempty"`
	DefaultLanguage     *string `json:"default_language,omitempty"`
}

func (r UpdateCampaignRequest) ToPatch() services.CampaignPatch {
	return services.CampaignPatch{
		Name:                r.Name,
		Description:         r.Description,
		AudienceDescription: r.AudienceDescription,
		SenderName:          r.SenderName,
		SenderEmail:         r.SenderEmail,
		DefaultLanguage:     r.DefaultLanguage,
	}
}

// Issues

type CreateIssueRequest struct {
	SubjectLine   string     `json:"subject_line"`
	IssueNumber   *int       `json:"issue_number,omitempty"`
	PreheaderText *string    `json:"preheader_text,omitempty"`
	Status        *string    `json:"status,omitempty"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`
	SentAt        *time.Time `json:"sent_at,omitempty"`
}

func (r CreateIssueRequest) ToModel() *models.Issue {
	return &models.Issue{
		SubjectLine:   r.SubjectLine,
		IssueNumber:   r.IssueNumber,
		PreheaderText: r.PreheaderText,
		Status:        r.Status,
		ScheduledAt:   r.ScheduledAt,
		SentAt:        r.SentAt,
	}
}

type UpdateIssueRequest struct {
	IssueNumber   *int       `json:"issue_number,omitempty"`
	SubjectLine   *string    `json:"subject_line,omitempty"`
	PreheaderText *string    `json:"preheader_text,omitempty"`
	Status        *string    `json:"status,omitempty"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`
	SentAt        *time.Time `json:"sent_at,omitempty"`
}

func (r UpdateIssueRequest) ToPatch() services.IssuePatch {
	return services.IssuePatch{
		IssueNumber:   r.IssueNumber,
		SubjectLine:   r.SubjectLine,
		PreheaderText: r.PreheaderText,
		Status:        r.Status,
		ScheduledAt:   r.ScheduledAt,
		SentAt:        r.SentAt,
	}
}

// Blocks

type CreateBlockRequest struct {
	OrderIndex *int    `json:"order_index,omitempty"`
	BlockType  *string `json:"block_type,omitempty"`
	Heading    *string `json:"heading,omitempty"`
	Body       *string `json:"body,omitempty"`
	CTALabel   *string `json:"cta_label,omitempty"`
	CTAURL     *string `json:"cta_url,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
	MetaJSON   *string `json:"meta_json,omitempty"`
}

// ToModel maps the request onto a block. An omitted order_index defaults
// to 1; anything supplied is stored exactly as given.
func (r CreateBlockRequest) ToModel() *models.Block {
	orderIndex := 1
	if r.OrderIndex != nil {
		orderIndex = *r.OrderIndex
	}
	return &models.Block{
		OrderIndex: orderIndex,
		BlockType:  r.BlockType,
		Heading:    r.Heading,
		Body:       r.Body,
		CTALabel:   r.CTALabel,
		CTAURL:     r.CTAURL,
		ImageURL:   r.ImageURL,
		MetaJSON:   r.MetaJSON,
	}
}

type UpdateBlockRequest struct {
	OrderIndex *int    `json:"order_index,omitempty"`
	BlockType  *string `json:"block_type,omitempty"`
	Heading    *string `json:"heading,omitempty"`
	Body       *string `json:"body,omitempty"`
	CTALabel   *string `json:"cta_label,omitempty"`
	CTAURL     *string `json:"cta_url,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
	MetaJSON   *string `json:"meta_json,omitempty"`
}

func (r UpdateBlockRequest) ToPatch() services.BlockPatch {
	return services.BlockPatch{
		OrderIndex: r.OrderIndex,
		BlockType:  r.BlockType,
		Heading:    r.Heading,
		Body:       r.Body,
		CTALabel:   r.CTALabel,
		CTAURL:     r.CTAURL,
		ImageURL:   r.ImageURL,
		MetaJSON:   r.MetaJSON,
	}
}
