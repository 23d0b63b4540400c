package seeders

import (
	"context"

	"github.com/Rakhulsr/contoso-pizza/app/db/fakers"
	"github.com/Rakhulsr/contoso-pizza/app/db/session"
	"github.com/Rakhulsr/contoso-pizza/app/models"
	"github.com/Rakhulsr/contoso-pizza/app/utils/format"
	"go.uber.org/zap"
)

type Seeder struct {
	Seeder interface{}
}

func SeedersRegister() []Seeder {
	var seeders []Seeder
	for _, product := range fakers.ProductFaker() {
		seeders = append(seeders, Seeder{Seeder: product})
	}
	return seeders
}

// DBSeed registers every seed with sess and commits them as one batch.
func DBSeed(ctx context.Context, sess *session.Session, log *zap.Logger) error {
	seeders := SeedersRegister()
	for _, seeder := range seeders {
		if err := sess.Register(seeder.Seeder); err != nil {
			return err
		}
	}

	if err := sess.Commit(ctx); err != nil {
		return err
	}

	for _, seeder := range seeders {
		if product, ok := seeder.Seeder.(*models.Product); ok {
			log.Info("product seeded",
				zap.Uint("id", product.ID),
				zap.String("name", product.Name),
				zap.String("price", format.FormatPrice(product.Price)),
			)
		}
	}
	return nil
}
