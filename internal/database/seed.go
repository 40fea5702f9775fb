package database

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/diagnostico-tools/diagnostico_backend/internal/models"
)

// Seeder handles database seeding operations
// #SEED_DATA: Default maturity questionnaire with five pillars weighing 100
// points in total, matching the 40/70 maturity band thresholds
type Seeder struct {
	db *mongo.Database
}

// NewSeeder creates a new database seeder
func NewSeeder(db *mongo.Database) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed operations
func (s *Seeder) SeedAll(ctx context.Context) error {
	log.Println("Starting database seeding...")

	if err := s.SeedPillars(ctx); err != nil {
		return fmt.Errorf("failed to seed pillars: %w", err)
	}

	log.Println("Database seeding completed successfully")
	return nil
}

// SeedPillars seeds the default questionnaire pillars
func (s *Seeder) SeedPillars(ctx context.Context) error {
	collection := s.db.Collection(models.Pillar{}.CollectionName())

	// Never overwrite an administrator-edited questionnaire
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Pillars already exist, skipping seeding")
		return nil
	}

	pillars := s.defaultPillars()

	docs := make([]interface{}, len(pillars))
	for i, p := range pillars {
		p.BeforeCreate()
		docs[i] = p
	}

	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return err
	}

	log.Printf("Seeded %d default pillars", len(pillars))
	return nil
}

// defaultPillars returns the default five-pillar questionnaire
func (s *Seeder) defaultPillars() []*models.Pillar {
	return []*models.Pillar{
		{
			Ordinal: 1,
			Name:    "Estratégia",
			Questions: []models.Question{
				{Order: 1, Text: "A empresa possui um planejamento estratégico documentado?", Points: 5, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeTernary},
				{Order: 2, Text: "As metas do negócio são revisadas pelo menos uma vez por trimestre?", Points: 5, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeBinary},
				{Order: 3, Text: "A empresa conhece seus principais concorrentes e diferenciais?", Points: 5, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeTernary},
				{Order: 4, Text: "Existe um plano de crescimento para os próximos dois anos?", Points: 5, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeTernary},
			},
		},
		{
			Ordinal: 2,
			Name:    "Finanças",
			Questions: []models.Question{
				{Order: 1, Text: "As contas pessoais são separadas das contas da empresa?", Points: 5, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeBinary},
				{Order: 2, Text: "A empresa mantém controle de fluxo de caixa atualizado?", Points: 5, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeTernary},
				{Order: 3, Text: "Existe reserva financeira para pelo menos três meses de operação?", Points: 5, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeTernary},
				{Order: 4, Text: "A empresa possui dívidas em atraso?", Points: 5, PositiveAnswer: models.AnswerNo, AnswerType: models.AnswerTypeBinary},
				{Order: 5, Text: "Os preços praticados são revisados com base em custos e margem?", Points: 5, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeTernary},
			},
		},
		{
			Ordinal: 3,
			Name:    "Operações",
			Questions: []models.Question{
				{Order: 1, Text: "Os principais processos do negócio estão documentados?", Points: 5, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeTernary},
				{Order: 2, Text: "A empresa utiliza algum sistema de gestão (ERP ou similar)?", Points: 5, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeBinary},
				{Order: 3, Text: "Existem indicadores de qualidade acompanhados regularmente?", Points: 5, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeTernary},
				{Order: 4, Text: "O estoque (quando aplicável) é controlado de forma sistemática?", Points: 5, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeTernary},
			},
		},
		{
			Ordinal: 4,
			Name:    "Marketing e Vendas",
			Questions: []models.Question{
				{Order: 1, Text: "A empresa investe em marketing digital de forma recorrente?", Points: 5, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeTernary},
				{Order: 2, Text: "Existe um processo definido de acompanhamento de vendas?", Points: 5, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeTernary},
				{Order: 3, Text: "A empresa conhece o perfil dos seus principais clientes?", Points: 5, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeBinary},
				{Order: 4, Text: "A satisfação dos clientes é medida de alguma forma?", Points: 5, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeTernary},
			},
		},
		{
			Ordinal: 5,
			Name:    "Pessoas",
			Questions: []models.Question{
				{Order: 1, Text: "As funções e responsabilidades da equipe estão claramente definidas?", Points: 5, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeTernary},
				{Order: 2, Text: "A empresa investe em capacitação da equipe?", Points: 5, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeTernary},
				{Order: 3, Text: "O negócio depende exclusivamente do proprietário para operar?", Points: 5, PositiveAnswer: models.AnswerNo, AnswerType: models.AnswerTypeTernary},
			},
		},
	}
}
