package models

import (
	"encoding/json"
	"fmt"
)

// SectionContentKind tags the shape carried by a SectionContent value.
type SectionContentKind string

const (
	SectionContentNone   SectionContentKind = ""
	SectionContentText   SectionContentKind = "text"
	SectionContentList   SectionContentKind = "list"
	SectionContentItems  SectionContentKind = "items"
	SectionContentObject SectionContentKind = "object"
)

// SectionContent is a tagged union over the shapes a card section may carry:
// a string, a list of strings, a list of objects, or a single object. On the
// wire it serializes back to the bare value, so clients see plain JSON.
type SectionContent struct {
	Kind   SectionContentKind
	Text   string
	List   []string
	Items  []map[string]string
	Object map[string]string
}

func (c SectionContent) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case SectionContentText:
		return json.Marshal(c.Text)
	case SectionContentList:
		return json.Marshal(c.List)
	case SectionContentItems:
		return json.Marshal(c.Items)
	case SectionContentObject:
		return json.Marshal(c.Object)
	default:
		return []byte("null"), nil
	}
}

func (c *SectionContent) UnmarshalJSON(data []byte) error {
	*c = SectionContent{}

	var probe interface{}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	switch probe.(type) {
	case nil:
		return nil
	case string:
		c.Kind = SectionContentText
		return json.Unmarshal(data, &c.Text)
	case map[string]interface{}:
		c.Kind = SectionContentObject
		return json.Unmarshal(data, &c.Object)
	case []interface{}:
		var list []string
		if err := json.Unmarshal(data, &list); err == nil {
			c.Kind = SectionContentList
			c.List = list
			return nil
		}
		var items []map[string]string
		if err := json.Unmarshal(data, &items); err == nil {
			c.Kind = SectionContentItems
			c.Items = items
			return nil
		}
		return fmt.Errorf("section content array must hold strings or flat objects")
	default:
		return fmt.Errorf("unsupported section content type %T", probe)
	}
}

// CardSection is one block of an investment card. SectionID is auto-generated
// when absent; Order, when set, must be unique within the card.
type CardSection struct {
	SectionID string         `json:"sectionId"`
	Title     string         `json:"title,omitempty"`
	Content   SectionContent `json:"content,omitempty"`
	Order     int            `json:"order,omitempty"`
}

// InvestmentCardModel is a portfolio company card.
type InvestmentCardModel struct {
	Base
	CardID      string        `json:"cardId"      gorm:"type:char(36);uniqueIndex;not null"`
	CompanyName string        `json:"companyName,omitempty" gorm:"size:200;index"`
	CompanyLogo string        `json:"companyLogo,omitempty" gorm:"size:500"`
	Sections    []CardSection `json:"sections"    gorm:"type:json;serializer:json"`
	SoftDelete
}

func (InvestmentCardModel) TableName() string { return "investment_cards" }
