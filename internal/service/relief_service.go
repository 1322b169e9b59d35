package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const reliefSystemPrompt = `You are a Malaysian tax consultant AI. Classify expenses based on these tax relief categories:

1. Individual and dependent relatives
2. Expenses for parents (medical, dental, carer)
3. Basic supporting equipment for disabled
4. Disabled individual
5. Education fees (law, accounting, technical, etc)
6. Medical expenses (serious disease, fertility, vaccination, dental)
7. Medical exams & COVID tests
8. Child intellectual disability expenses
9. Lifestyle - books, gadgets, internet, skills
10. Lifestyle - sports equipment, facility, training
11. Breastfeeding equipment
12. Childcare fees
13. SSPN education savings
14. Spouse / alimony
15. Disabled spouse
16. Children
17. Life insurance, EPF
18. Annuity & PRS
19. Education/medical insurance
20. SOCSO
21. EV charging expenses

Return ONLY the category number (1-21) for the expense. If it doesn't qualify, return "Non-claimable".`

// ReliefService classifies an extracted expense into a Malaysian tax relief
// category via a text-only model call.
type ReliefService struct {
	client ModelClient
	logger *zap.Logger
}

func NewReliefService(client ModelClient, logger *zap.Logger) *ReliefService {
	return &ReliefService{client: client, logger: logger}
}

// Classify returns a category number as a string ("1" through "21") or
// "Non-claimable". Anything else the model says comes back verbatim so the
// caller can decide what to do with it.
func (s *ReliefService) Classify(ctx context.Context, merchant, description string, amount decimal.Decimal) (string, error) {
	prompt := fmt.Sprintf(`Merchant: %s
Items: %s
Amount: RM%s

Which tax relief category does this fall under? Return only the category number or "Non-claimable".`,
		merchant, description, amount.StringFixed(2))

	response, err := s.client.Complete(ctx, reliefSystemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("relief classification failed: %w", err)
	}

	category := strings.TrimSpace(response)
	if i := strings.IndexByte(category, '\n'); i != -1 {
		category = strings.TrimSpace(category[:i])
	}

	if n, err := strconv.Atoi(category); err == nil && n >= 1 && n <= 21 {
		return strconv.Itoa(n), nil
	}

	s.logger.Debug("Relief classification returned non-numeric category",
		zap.String("category", category),
	)
	return category, nil
}
