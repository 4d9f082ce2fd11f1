// Seeds demo positions and, when ADMIN_EMAIL/ADMIN_PASSWORD are set, a
// dashboard admin account.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/markoub/careers/config"
	"github.com/markoub/careers/internal/models"
	"github.com/markoub/careers/internal/repositories/sqlrepo"
	"github.com/markoub/careers/internal/utils"
)

func main() {
	_ = godotenv.Load()

	if err := config.InitDatabase(os.Getenv("DATABASE_URL")); err != nil {
		log.Fatalf("database init error: %v", err)
	}

	ctx := context.Background()
	positions := sqlrepo.NewPositionRepo(config.DB)

	log.Println("seeding positions...")
	for _, p := range demoPositions() {
		if err := positions.Create(ctx, p); err != nil {
			log.Fatalf("seed position %q: %v", p.Title, err)
		}
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email != "" && password != "" {
		hash, err := utils.HashPassword(password)
		if err != nil {
			log.Fatalf("hash admin password: %v", err)
		}
		admins := sqlrepo.NewAdminUserRepo(config.DB)
		err = admins.Insert(ctx, &models.AdminUser{
			ID:           uuid.NewString(),
			Email:        email,
			PasswordHash: hash,
			Role:         models.RoleAdmin,
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			log.Fatalf("seed admin user: %v", err)
		}
		log.Printf("admin user %s created", email)
	}

	log.Println("done")
}

func demoPositions() []*models.Position {
	return []*models.Position{
		{
			Title:       "Software engineer",
			Department:  "Engineering",
			WorkType:    "Hybrid",
			Location:    "Rabat, Morocco",
			Description: "Full Stack Developer position",
			WhatWeDo:    "MarKoub.ma is a pioneering intercity bus ticketing platform in Morocco, committed to making travel easy, affordable, and convenient for everyone.",
			YourMission: "Developing application components across back-end, front-end, and mobile, building integrations and features that drive value for our users.",
			YourProfile: "3+ years of professional full-stack experience; curious, positive, and a doer mentality.",
			TechStack:   "React, Next.js, TypeScript, Node.js, Postgres, Docker",
			WhatWeOffer: "An entrepreneurial journey in a fast growing pioneering scale-up, with flexibility and a hybrid work environment.",
		},
		{
			Title:       "UX Designer",
			Department:  "Design",
			WorkType:    "Hybrid",
			Location:    "Rabat, Morocco",
			Description: "User Experience Designer",
			WhatWeDo:    "MarKoub.ma is a pioneering intercity bus ticketing platform in Morocco. We're looking for a talented UX Designer to help shape the future of travel in Morocco.",
			YourMission: "Design intuitive interfaces, conduct user research, and collaborate with developers to implement designs.",
			YourProfile: "3+ years of UX design experience and a strong portfolio.",
			TechStack:   "Figma, Adobe XD, Hotjar",
			WhatWeOffer: "Creative freedom in a growing startup and flexible working hours.",
		},
		{
			Title:       "Product Manager",
			Department:  "Product",
			WorkType:    "Hybrid",
			Location:    "Rabat, Morocco",
			Description: "Product Manager",
			WhatWeDo:    "MarKoub.ma is transforming intercity travel in Morocco. We need a Product Manager to drive our product vision forward.",
			YourMission: "Define product strategy, prioritize requirements, and work closely with engineering and design.",
			YourProfile: "4+ years of product management experience with strong analytical skills.",
			TechStack:   "Analytics tooling, roadmapping tools",
			WhatWeOffer: "Ownership of a product used by travelers across the country.",
		},
	}
}
