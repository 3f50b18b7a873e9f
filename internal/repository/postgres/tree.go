// Package postgres implements TreeRepository against an adjacency-list
// schema: one row per folder with a parent pointer, one row per file keyed
// by its folder. SaveTree rewrites the whole tree in a single transaction,
// preserving the store's snapshot-at-a-time contract.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"fruitstars/internal/domain"
	"fruitstars/internal/domain/models"
	"fruitstars/internal/domain/repositories"
)

// RepositoryConfig holds shared repository dependencies.
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Tables *TableNames
	Logger *slog.Logger
}

// TreeRepository persists tree snapshots to postgres.
type TreeRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewTreeRepository creates a postgres-backed tree repository.
func NewTreeRepository(config *RepositoryConfig) repositories.TreeRepository {
	return &TreeRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// EnsureSchema creates the folder and file tables if they do not exist.
// Table names are interpolated before the SQL is sent, so each environment
// prefix gets its own statements.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	ddl := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %[1]s (
				id TEXT PRIMARY KEY,
				parent_id TEXT REFERENCES %[1]s(id) ON DELETE CASCADE,
				name TEXT NOT NULL,
				kind TEXT NOT NULL,
				position INTEGER NOT NULL,
				client_id TEXT NOT NULL DEFAULT '',
				client_name TEXT NOT NULL DEFAULT '',
				supplier_id TEXT NOT NULL DEFAULT '',
				supplier_name TEXT NOT NULL DEFAULT '',
				product_ids TEXT[],
				product_names TEXT[],
				invoice_number TEXT NOT NULL DEFAULT '',
				batch_number TEXT NOT NULL DEFAULT '',
				container_number TEXT NOT NULL DEFAULT '',
				shipping_line TEXT NOT NULL DEFAULT '',
				vessel TEXT NOT NULL DEFAULT '',
				order_reference TEXT NOT NULL DEFAULT '',
				destination_port TEXT NOT NULL DEFAULT ''
			)
		`, tables.Folders),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %[1]s (
				id TEXT PRIMARY KEY,
				folder_id TEXT NOT NULL REFERENCES %[2]s(id) ON DELETE CASCADE,
				name TEXT NOT NULL,
				type TEXT NOT NULL,
				size TEXT NOT NULL DEFAULT '',
				last_modified TEXT NOT NULL DEFAULT '',
				labels JSONB NOT NULL DEFAULT '[]',
				preview_url TEXT NOT NULL DEFAULT '',
				expiration_date TEXT NOT NULL DEFAULT '',
				invoice_number TEXT NOT NULL DEFAULT '',
				position INTEGER NOT NULL
			)
		`, tables.Files, tables.Folders),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %[1]s_folder_idx ON %[1]s(folder_id)`, tables.Files),
	}

	for _, stmt := range ddl {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// LoadTree reconstructs the nested tree from the adjacency-list rows.
// Rows are ordered by their pre-order position, so appending children as
// they are read preserves sibling order.
func (r *TreeRepository) LoadTree(ctx context.Context) (*models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT id, parent_id, name, kind,
		       client_id, client_name, supplier_id, supplier_name,
		       product_ids, product_names,
		       invoice_number, batch_number, container_number,
		       shipping_line, vessel, order_reference, destination_port
		FROM %s
		ORDER BY position
	`, r.tables.Folders)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load folders: %w", err)
	}
	defer rows.Close()

	folderMap := make(map[string]*models.Folder)
	parentOf := make(map[string]string)
	var order []string
	var root *models.Folder

	for rows.Next() {
		var folder models.Folder
		var parentID *string
		err := rows.Scan(
			&folder.ID, &parentID, &folder.Name, &folder.Kind,
			&folder.ClientID, &folder.ClientName, &folder.SupplierID, &folder.SupplierName,
			&folder.ProductIDs, &folder.ProductNames,
			&folder.InvoiceNumber, &folder.BatchNumber, &folder.ContainerNumber,
			&folder.ShippingLine, &folder.Vessel, &folder.OrderReference, &folder.DestinationPort,
		)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folder.SubFolders = []*models.Folder{}
		folder.Files = []*models.File{}

		folderMap[folder.ID] = &folder
		order = append(order, folder.ID)
		if parentID == nil {
			if root != nil {
				return nil, fmt.Errorf("load tree: multiple root folders (%s, %s)", root.ID, folder.ID)
			}
			root = &folder
		} else {
			parentOf[folder.ID] = *parentID
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load folders: %w", err)
	}
	if root == nil {
		return nil, fmt.Errorf("no tree persisted: %w", domain.ErrNotFound)
	}

	// Attach children in row order.
	for _, id := range order {
		parentID, ok := parentOf[id]
		if !ok {
			continue
		}
		parent, ok := folderMap[parentID]
		if !ok {
			return nil, fmt.Errorf("load tree: folder %s references missing parent %s", id, parentID)
		}
		parent.SubFolders = append(parent.SubFolders, folderMap[id])
	}

	if err := r.loadFiles(ctx, folderMap); err != nil {
		return nil, err
	}

	r.logger.Debug("tree loaded",
		"folder_count", len(folderMap),
	)
	return root, nil
}

func (r *TreeRepository) loadFiles(ctx context.Context, folderMap map[string]*models.Folder) error {
	query := fmt.Sprintf(`
		SELECT id, folder_id, name, type, size, last_modified,
		       labels, preview_url, expiration_date, invoice_number
		FROM %s
		ORDER BY position
	`, r.tables.Files)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("load files: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var file models.File
		var folderID string
		var labelsJSON []byte
		err := rows.Scan(
			&file.ID, &folderID, &file.Name, &file.Type, &file.Size, &file.LastModified,
			&labelsJSON, &file.PreviewURL, &file.ExpirationDate, &file.InvoiceNumber,
		)
		if err != nil {
			return fmt.Errorf("scan file: %w", err)
		}
		if err := json.Unmarshal(labelsJSON, &file.Labels); err != nil {
			return fmt.Errorf("decode labels for file %s: %w", file.ID, err)
		}
		if file.Labels == nil {
			file.Labels = []models.Label{}
		}

		folder, ok := folderMap[folderID]
		if !ok {
			return fmt.Errorf("load tree: file %s references missing folder %s", file.ID, folderID)
		}
		folder.Files = append(folder.Files, &file)
	}
	return rows.Err()
}

// SaveTree replaces the persisted tree with the snapshot: all rows are
// rewritten inside one transaction, folders in pre-order so parent rows
// exist before their children.
func (r *TreeRepository) SaveTree(ctx context.Context, root *models.Folder) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save tree: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s`, r.tables.Files)); err != nil {
		return fmt.Errorf("clear files: %w", err)
	}
	if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s`, r.tables.Folders)); err != nil {
		return fmt.Errorf("clear folders: %w", err)
	}

	insertFolder := fmt.Sprintf(`
		INSERT INTO %s (
			id, parent_id, name, kind, position,
			client_id, client_name, supplier_id, supplier_name,
			product_ids, product_names,
			invoice_number, batch_number, container_number,
			shipping_line, vessel, order_reference, destination_port
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`, r.tables.Folders)
	insertFile := fmt.Sprintf(`
		INSERT INTO %s (
			id, folder_id, name, type, size, last_modified,
			labels, preview_url, expiration_date, invoice_number, position
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, r.tables.Files)

	folderPos := 0
	filePos := 0
	var walk func(folder *models.Folder, parentID *string) error
	walk = func(folder *models.Folder, parentID *string) error {
		folderPos++
		_, err := tx.Exec(ctx, insertFolder,
			folder.ID, parentID, folder.Name, string(folder.Kind), folderPos,
			folder.ClientID, folder.ClientName, folder.SupplierID, folder.SupplierName,
			folder.ProductIDs, folder.ProductNames,
			folder.InvoiceNumber, folder.BatchNumber, folder.ContainerNumber,
			folder.ShippingLine, folder.Vessel, folder.OrderReference, folder.DestinationPort,
		)
		if err != nil {
			if IsPgDuplicateError(err) {
				return &domain.ConflictError{
					Message:      fmt.Sprintf("folder id %s occurs more than once in the tree", folder.ID),
					ResourceType: "folder",
					ResourceID:   folder.ID,
				}
			}
			return fmt.Errorf("insert folder %s: %w", folder.ID, err)
		}

		for _, file := range folder.Files {
			filePos++
			labelsJSON, err := json.Marshal(file.Labels)
			if err != nil {
				return fmt.Errorf("encode labels for file %s: %w", file.ID, err)
			}
			_, err = tx.Exec(ctx, insertFile,
				file.ID, folder.ID, file.Name, string(file.Type), file.Size, file.LastModified,
				labelsJSON, file.PreviewURL, file.ExpirationDate, file.InvoiceNumber, filePos,
			)
			if err != nil {
				if IsPgDuplicateError(err) {
					return &domain.ConflictError{
						Message:      fmt.Sprintf("file id %s occurs more than once in the tree", file.ID),
						ResourceType: "file",
						ResourceID:   file.ID,
					}
				}
				return fmt.Errorf("insert file %s: %w", file.ID, err)
			}
		}

		for _, sub := range folder.SubFolders {
			if err := walk(sub, &folder.ID); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root, nil); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit save tree: %w", err)
	}

	r.logger.Debug("tree saved",
		"folder_count", folderPos,
		"file_count", filePos,
	)
	return nil
}
