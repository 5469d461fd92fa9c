package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/centralkang-byte/ctr-hr-hub-sub002/models"
	"github.com/elastic/go-elasticsearch/v8"
	"gorm.io/gorm"
)

// EmployeeService backs the directory endpoints. Search goes through
// Elasticsearch when a cluster is configured and falls back to a plain
// database filter otherwise.
type EmployeeService struct {
	db       *gorm.DB
	esClient *elasticsearch.Client
}

func NewEmployeeService(db *gorm.DB) (*EmployeeService, error) {
	var esClient *elasticsearch.Client
	if esURL := os.Getenv("ELASTICSEARCH_URL"); esURL != "" {
		var err error
		esClient, err = elasticsearch.NewClient(elasticsearch.Config{
			Addresses: []string{esURL},
		})
		if err != nil {
			log.Printf("Warning: Failed to create Elasticsearch client: %v", err)
			esClient = nil
		}
	}
	return &EmployeeService{db: db, esClient: esClient}, nil
}

// SearchEmployees runs a directory search scoped to one company.
func (s *EmployeeService) SearchEmployees(ctx context.Context, companyID, query string) ([]map[string]interface{}, error) {
	if s.esClient == nil {
		return s.searchEmployeesDB(ctx, companyID, query)
	}

	results, err := s.searchEmployeesES(ctx, companyID, query)
	if err != nil {
		log.Printf("[SearchEmployees] Elasticsearch search failed, falling back to database: %v", err)
		return s.searchEmployeesDB(ctx, companyID, query)
	}
	return results, nil
}

func (s *EmployeeService) searchEmployeesES(ctx context.Context, companyID, query string) ([]map[string]interface{}, error) {
	searchQuery := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": map[string]interface{}{
					"multi_match": map[string]interface{}{
						"query":  query,
						"fields": []string{"first_name", "last_name", "email", "position"},
					},
				},
				"filter": map[string]interface{}{
					"term": map[string]interface{}{"company_id": companyID},
				},
			},
		},
	}
	body, err := json.Marshal(searchQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search query: %w", err)
	}

	res, err := s.esClient.Search(
		s.esClient.Search.WithContext(ctx),
		s.esClient.Search.WithIndex("employees"),
		s.esClient.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch search failed: %s", res.String())
	}

	var result map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	hitsMap, ok := result["hits"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("invalid hits structure in search response")
	}
	hitsArray, ok := hitsMap["hits"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("invalid hits array in search response")
	}

	var employees []map[string]interface{}
	for _, hit := range hitsArray {
		hitMap, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}
		source, ok := hitMap["_source"].(map[string]interface{})
		if !ok {
			continue
		}
		employees = append(employees, source)
	}
	return employees, nil
}

func (s *EmployeeService) searchEmployeesDB(ctx context.Context, companyID, query string) ([]map[string]interface{}, error) {
	pattern := "%" + query + "%"

	var employees []models.Employee
	err := s.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR position ILIKE ?",
			pattern, pattern, pattern, pattern).
		Order("last_name asc").
		Limit(25).
		Find(&employees).Error
	if err != nil {
		log.Printf("[searchEmployeesDB] Error searching employees: %v", err)
		return nil, fmt.Errorf("searching employees: %w", err)
	}

	results := make([]map[string]interface{}, 0, len(employees))
	for _, emp := range employees {
		results = append(results, map[string]interface{}{
			"id":         emp.ID,
			"company_id": emp.CompanyID,
			"first_name": emp.FirstName,
			"last_name":  emp.LastName,
			"email":      emp.Email,
			"position":   emp.Position,
			"role":       emp.Role,
		})
	}
	return results, nil
}
