// Package menurepo provides data transfer objects and mapping functions for
// catalog persistence. Option groups are stored as a JSONB column: they are
// reference data replaced wholesale on edit and always loaded with the item.
package menurepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO represents the database structure for persisting catalog items.
type MenuItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
	BasePrice   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Category    string          `gorm:"index"`
	Available   bool
	Options     OptionsJSON `gorm:"type:jsonb"`
}

// TableName specifies the database table name for catalog items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// VariantDTO is the stored form of one selectable variant.
type VariantDTO struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
}

// OptionGroupDTO is the stored form of one option group.
type OptionGroupDTO struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Mode     string       `json:"mode"`
	Required bool         `json:"required"`
	Variants []VariantDTO `json:"variants"`
}

// OptionsJSON stores option groups as a JSONB column.
type OptionsJSON []OptionGroupDTO

// Value implements driver.Valuer for JSONB persistence.
func (j OptionsJSON) Value() (driver.Value, error) {
	return json.Marshal(j)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (j *OptionsJSON) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("unsupported type %T for OptionsJSON", value)
	}
}

// GormDataType tells GORM which column type to migrate.
func (OptionsJSON) GormDataType() string {
	return "jsonb"
}

// fromDomain converts a catalog item to its database representation.
func fromDomain(item *menu.Item) MenuItemDTO {
	options := make(OptionsJSON, 0, len(item.Options()))
	for _, group := range item.Options() {
		variants := make([]VariantDTO, 0, len(group.Variants()))
		for _, variant := range group.Variants() {
			variants = append(variants, VariantDTO{
				ID:              variant.ID(),
				Name:            variant.Name(),
				PriceAdjustment: variant.PriceAdjustment(),
			})
		}

		options = append(options, OptionGroupDTO{
			ID:       group.ID(),
			Name:     group.Name(),
			Mode:     group.Mode().String(),
			Required: group.Required(),
			Variants: variants,
		})
	}

	return MenuItemDTO{
		ID:          item.ID().Bytes(),
		Name:        item.Name(),
		Description: item.Description(),
		BasePrice:   item.BasePrice(),
		Category:    item.Category().String(),
		Available:   item.Available(),
		Options:     options,
	}
}

// toDomain converts a database DTO to a catalog item aggregate.
func toDomain(dto MenuItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := menu.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	options := make([]menu.OptionGroup, 0, len(dto.Options))
	for _, group := range dto.Options {
		mode, modeErr := menu.SelectionModeFromString(group.Mode)
		if modeErr != nil {
			return nil, modeErr
		}

		variants := make([]menu.Variant, 0, len(group.Variants))
		for _, variant := range group.Variants {
			restored, vErr := menu.NewVariant(variant.ID, variant.Name, variant.PriceAdjustment)
			if vErr != nil {
				return nil, vErr
			}
			variants = append(variants, restored)
		}

		restored, groupErr := menu.NewOptionGroup(group.ID, group.Name, mode, group.Required, variants)
		if groupErr != nil {
			return nil, groupErr
		}
		options = append(options, restored)
	}

	return menu.RestoreItem(id, dto.Name, dto.Description, dto.BasePrice, category, dto.Available, options)
}
