package main

import (
	"authcore/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates type-safe query code for the persistence models into
// internal/infra/persistence/postgres/query.
func main() {
	models := []any{
		model.UserModel{},
		model.OtpChallengeModel{},
		model.DeviceSessionModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
