package main

import (
	"context"
	"fmt"

	"storefront/cmd"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
)

// seedMenu loads the starter catalog on first boot. A non-empty menu is left
// untouched so shop edits survive restarts.
func seedMenu(ctx context.Context, app *cmd.CompositionRoot) error {
	menuHandler := app.CreateGetMenuQueryHandler()
	existing, err := menuHandler.Handle(ctx, queries.NewGetMenuQuery())
	if err != nil {
		return fmt.Errorf("failed to inspect menu: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	saveHandler := app.CreateSaveMenuItemCommandHandler()
	for _, item := range starterCatalog() {
		cmdItem, cmdErr := commands.NewSaveMenuItemCommand(
			kernel.NewUUID(),
			item.name,
			item.description,
			item.basePrice,
			item.category,
			true,
			item.options,
		)
		if cmdErr != nil {
			return fmt.Errorf("failed to build seed item %q: %w", item.name, cmdErr)
		}

		if saveErr := saveHandler.Handle(ctx, cmdItem); saveErr != nil {
			return fmt.Errorf("failed to seed item %q: %w", item.name, saveErr)
		}
	}

	return nil
}

type seedItem struct {
	name        string
	description string
	basePrice   decimal.Decimal
	category    menu.Category
	options     []menu.OptionGroup
}

func starterCatalog() []seedItem {
	return []seedItem{
		{
			name:        "Classic Burger",
			description: "Beef patty with lettuce, tomato and house sauce",
			basePrice:   decimal.NewFromFloat(8.90),
			category:    menu.Burgers,
			options: []menu.OptionGroup{
				mustGroup("patty", "Patty", menu.Single, true,
					mustVariant("beef", "Beef", decimal.Zero),
					mustVariant("chicken", "Chicken", decimal.Zero),
					mustVariant("plant", "Plant-Based", decimal.NewFromFloat(1.20)),
				),
				mustGroup("extras", "Extras", menu.Multiple, false,
					mustVariant("cheese", "Cheese", decimal.NewFromFloat(1.00)),
					mustVariant("bacon", "Bacon", decimal.NewFromFloat(1.80)),
					mustVariant("egg", "Fried Egg", decimal.NewFromFloat(1.50)),
				),
			},
		},
		{
			name:        "Fries",
			description: "Crispy golden fries",
			basePrice:   decimal.NewFromFloat(4.50),
			category:    menu.Sides,
			options: []menu.OptionGroup{
				mustGroup("size", "Size", menu.Single, true,
					mustVariant("small", "Small", decimal.NewFromFloat(-1.00)),
					mustVariant("medium", "Medium", decimal.Zero),
					mustVariant("large", "Large", decimal.NewFromFloat(1.50)),
				),
				mustGroup("sauce", "Sauce", menu.Multiple, false,
					mustVariant("ketchup", "Ketchup", decimal.Zero),
					mustVariant("aioli", "Garlic Aioli", decimal.NewFromFloat(0.50)),
					mustVariant("ranch", "Ranch", decimal.NewFromFloat(0.50)),
				),
			},
		},
		{
			name:        "Soft Drink",
			description: "Chilled fountain drink",
			basePrice:   decimal.NewFromFloat(3.50),
			category:    menu.Drinks,
			options: []menu.OptionGroup{
				mustGroup("size", "Size", menu.Single, true,
					mustVariant("regular", "Regular", decimal.Zero),
					mustVariant("large", "Large", decimal.NewFromFloat(1.00)),
				),
			},
		},
		{
			name:        "Chocolate Brownie",
			description: "Warm brownie with chocolate fudge",
			basePrice:   decimal.NewFromFloat(5.20),
			category:    menu.Desserts,
		},
	}
}

func mustVariant(id, name string, adjustment decimal.Decimal) menu.Variant {
	v, err := menu.NewVariant(id, name, adjustment)
	if err != nil {
		panic(err)
	}
	return v
}

func mustGroup(id, name string, mode menu.SelectionMode, required bool, variants ...menu.Variant) menu.OptionGroup {
	g, err := menu.NewOptionGroup(id, name, mode, required, variants)
	if err != nil {
		panic(err)
	}
	return g
}
