package blog

import (
	"database/sql"
	"encoding/json"

	"github.com/solvex-capital/marketing-core/internal/models"
)

// typesWithBlogsSQL joins active types against a windowed blog subquery so the
// whole aggregation is one round trip. ROW_NUMBER ranks each type's blogs by
// recency and the join keeps only the first N; types without blogs survive the
// LEFT JOIN as a single all-NULL blog row.
const typesWithBlogsSQL = `
SELECT
  t.type_id, t.name, t.slug, t.description,
  b.blog_id, b.title, b.slug AS blog_slug, b.excerpt, b.author, b.image,
  b.tags, b.published_at, b.view_count
FROM blog_types t
LEFT JOIN (
  SELECT
    type_id, blog_id, title, slug, excerpt, author, image, tags,
    published_at, view_count,
    ROW_NUMBER() OVER (PARTITION BY type_id ORDER BY published_at DESC) AS rn
  FROM blogs
  WHERE is_deleted = ? AND (is_published = ? OR ? = ?)
) b ON b.type_id = t.type_id AND b.rn <= ?
WHERE t.is_active = ? AND t.is_deleted = ?
ORDER BY t.name ASC, b.rn ASC`

// DefaultTypesWithBlogsLimit caps each type's embedded blog list by default.
const DefaultTypesWithBlogsLimit = 5

// GetTypesWithBlogs returns every active type with its most recent blogs, at
// most limit per type, in a single query. Admin mode includes unpublished
// blogs.
func (s *Service) GetTypesWithBlogs(limit int, isAdmin bool) ([]models.TypeWithBlogs, error) {
	if limit <= 0 {
		limit = DefaultTypesWithBlogsLimit
	}

	rows, err := s.db.Raw(typesWithBlogsSQL,
		false, true, isAdmin, true, limit,
		true, false,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]models.TypeWithBlogs, 0)
	index := map[string]int{}

	for rows.Next() {
		var (
			typeID, name, slug string
			description        sql.NullString
			blogID, title      sql.NullString
			blogSlug, excerpt  sql.NullString
			author, image      sql.NullString
			rawTags            sql.NullString
			publishedAt        sql.NullTime
			viewCount          sql.NullInt64
		)
		if err := rows.Scan(
			&typeID, &name, &slug, &description,
			&blogID, &title, &blogSlug, &excerpt, &author, &image,
			&rawTags, &publishedAt, &viewCount,
		); err != nil {
			return nil, err
		}

		pos, seen := index[typeID]
		if !seen {
			result = append(result, models.TypeWithBlogs{
				TypeID:      typeID,
				Name:        name,
				Slug:        slug,
				Description: description.String,
				Blogs:       []models.BlogSummary{},
			})
			pos = len(result) - 1
			index[typeID] = pos
		}

		if !blogID.Valid {
			continue
		}

		summary := models.BlogSummary{
			BlogID:    blogID.String,
			Title:     title.String,
			Slug:      blogSlug.String,
			Excerpt:   excerpt.String,
			Author:    author.String,
			Image:     image.String,
			Tags:      models.StringSlice{},
			ViewCount: viewCount.Int64,
		}
		if rawTags.Valid && rawTags.String != "" {
			// tags column is a JSON array; a decode failure leaves them empty
			_ = json.Unmarshal([]byte(rawTags.String), &summary.Tags)
		}
		if publishedAt.Valid {
			at := publishedAt.Time
			summary.PublishedAt = &at
		}
		result[pos].Blogs = append(result[pos].Blogs, summary)
	}
	return result, rows.Err()
}
