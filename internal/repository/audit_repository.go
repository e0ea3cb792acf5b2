package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"campus-safety/internal/models"
)

// AuditRepository handles database operations for audit logs
type AuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit log repository
func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// AuditFilters describes the optional filters for audit log queries
type AuditFilters struct {
	ActorRef  string
	Action    string
	Resource  string
	SortBy    string
	SortOrder string
}

// Create inserts a new audit log entry
func (r *AuditRepository) Create(log *models.AuditLog) error {
	query := `
		INSERT INTO audit_logs (actor_ref, action, resource, details, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	_, err := r.db.Exec(query,
		log.ActorRef,
		log.Action,
		log.Resource,
		log.Details,
		log.IPAddress,
		log.UserAgent,
		log.CreatedAt,
	)
	return err
}

// buildFilterClause returns the WHERE clause and args for the given filters
func buildFilterClause(filters AuditFilters) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filters.ActorRef != "" {
		args = append(args, filters.ActorRef)
		conditions = append(conditions, fmt.Sprintf("actor_ref = $%d", len(args)))
	}
	if filters.Action != "" {
		args = append(args, filters.Action)
		conditions = append(conditions, fmt.Sprintf("action = $%d", len(args)))
	}
	if filters.Resource != "" {
		args = append(args, filters.Resource)
		conditions = append(conditions, fmt.Sprintf("resource = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// sortClause validates the sort parameters against an allowlist so user
// input never reaches the query verbatim
func sortClause(filters AuditFilters) string {
	sortBy := "created_at"
	switch filters.SortBy {
	case "id", "actor_ref", "action", "resource", "created_at":
		sortBy = filters.SortBy
	}

	sortOrder := "DESC"
	if strings.EqualFold(filters.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	return fmt.Sprintf(" ORDER BY %s %s", sortBy, sortOrder)
}

// CountWithFilters returns the number of audit logs matching the filters
func (r *AuditRepository) CountWithFilters(filters AuditFilters) (int, error) {
	where, args := buildFilterClause(filters)

	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM audit_logs"+where, args...).Scan(&count)
	return count, err
}

// GetAllWithFilters retrieves audit logs matching the filters with pagination
func (r *AuditRepository) GetAllWithFilters(filters AuditFilters, limit, offset int) ([]models.AuditLog, error) {
	where, args := buildFilterClause(filters)

	args = append(args, limit)
	limitArg := len(args)
	args = append(args, offset)
	offsetArg := len(args)

	query := "SELECT id, actor_ref, action, resource, details, ip_address, user_agent, created_at FROM audit_logs" +
		where + sortClause(filters) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", limitArg, offsetArg)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.AuditLog
	for rows.Next() {
		var log models.AuditLog
		err := rows.Scan(
			&log.ID,
			&log.ActorRef,
			&log.Action,
			&log.Resource,
			&log.Details,
			&log.IPAddress,
			&log.UserAgent,
			&log.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}
