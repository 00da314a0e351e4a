package store

import (
	"time"

	"personalfit/trainer-app/internal/domain"
)

// Seed data used the first time the app runs, before anything has been
// persisted. Fixed ids keep the demo accounts linkable across restarts.

const seedPersonalID = "personal-1"

func daysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}

func seedStudents() []domain.Student {
	lastA := daysAgo(1)
	lastB := daysAgo(4)
	return []domain.Student{
		{
			ID:          "student-1",
			Name:        "Carlos Silva",
			Email:       "carlos@exemplo.com",
			Age:         28,
			Level:       domain.LevelIntermediate,
			Goal:        "Hipertrofia",
			Status:      domain.StatusActive,
			PersonalID:  seedPersonalID,
			LastWorkout: &lastA,
			CreatedAt:   daysAgo(90),
		},
		{
			ID:          "student-2",
			Name:        "Maria Santos",
			Email:       "maria@exemplo.com",
			Age:         34,
			Level:       domain.LevelBeginner,
			Goal:        "Emagrecimento",
			Status:      domain.StatusWarning,
			PersonalID:  seedPersonalID,
			LastWorkout: &lastB,
			CreatedAt:   daysAgo(60),
		},
		{
			ID:         "student-3",
			Name:       "João Oliveira",
			Email:      "joao@exemplo.com",
			Age:        22,
			Level:      domain.LevelAdvanced,
			Goal:       "Força",
			Status:     domain.StatusInactive,
			PersonalID: seedPersonalID,
			CreatedAt:  daysAgo(120),
		},
	}
}

func seedExercises() []domain.Exercise {
	now := time.Now()
	return []domain.Exercise{
		{
			ID:           "exercise-1",
			Name:         "Supino Reto",
			Description:  "Exercício composto para peitoral",
			MuscleGroup:  "Peito",
			Difficulty:   domain.LevelIntermediate,
			Equipment:    []string{"Barra", "Banco"},
			Instructions: []string{"Deite no banco", "Desça a barra até o peito", "Empurre de volta"},
			Tips:         []string{"Mantenha os pés firmes no chão"},
			CommonMistakes: []string{
				"Quicar a barra no peito",
				"Arquear demais a lombar",
			},
			IsCustom:  false,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:           "exercise-2",
			Name:         "Agachamento Livre",
			Description:  "Exercício composto para pernas",
			MuscleGroup:  "Pernas",
			Difficulty:   domain.LevelIntermediate,
			Equipment:    []string{"Barra"},
			Instructions: []string{"Posicione a barra nas costas", "Agache até as coxas ficarem paralelas", "Suba controlando"},
			Tips:         []string{"Joelhos alinhados com os pés"},
			CommonMistakes: []string{
				"Joelhos para dentro",
				"Descer pouco",
			},
			IsCustom:  false,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:           "exercise-3",
			Name:         "Remada Curvada",
			Description:  "Exercício composto para costas",
			MuscleGroup:  "Costas",
			Difficulty:   domain.LevelBeginner,
			Equipment:    []string{"Barra"},
			Instructions: []string{"Incline o tronco", "Puxe a barra até o abdômen", "Desça controlando"},
			Tips:         []string{"Coluna neutra durante todo o movimento"},
			IsCustom:     false,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "exercise-4",
			Name:         "Tríceps Corda",
			Description:  "Isolamento de tríceps na polia",
			MuscleGroup:  "Tríceps",
			Difficulty:   domain.LevelBeginner,
			Equipment:    []string{"Polia", "Corda"},
			Instructions: []string{"Cotovelos junto ao corpo", "Estenda os braços", "Retorne devagar"},
			IsCustom:     false,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}

func seedAchievements() []domain.Achievement {
	return []domain.Achievement{
		{
			ID:          "achievement-1",
			Title:       "Primeira Semana",
			Description: "Completou todos os treinos da primeira semana",
			Icon:        "🔥",
			StudentID:   "student-1",
			UnlockedAt:  daysAgo(45),
		},
		{
			ID:          "achievement-2",
			Title:       "Sequência de 5 dias",
			Description: "Treinou 5 dias seguidos",
			Icon:        "⚡",
			StudentID:   "student-1",
			UnlockedAt:  daysAgo(10),
		},
		{
			ID:          "achievement-3",
			Title:       "Primeiro Treino",
			Description: "Completou o primeiro treino guiado",
			Icon:        "🏅",
			StudentID:   "student-2",
			UnlockedAt:  daysAgo(20),
		},
	}
}
