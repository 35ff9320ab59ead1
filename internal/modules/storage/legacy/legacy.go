// Package legacy imports content from the previous MongoDB deployment. It is
// a one-shot migration path: connect to the legacy database, read each
// collection and upsert the documents into the relational store, keeping the
// external UUIDs so frontend references survive the move.
package legacy

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/google/uuid"
	"github.com/solvex-capital/marketing-core/internal/models"
)

const connectTimeout = 10 * time.Second

// Importer copies legacy Mongo collections into the relational store.
type Importer struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewImporter(db *gorm.DB, log *zap.Logger) *Importer {
	return &Importer{db: db, log: log}
}

// Run connects to the legacy deployment and imports every collection.
// Documents whose external id already exists locally are skipped, so the
// import is safe to re-run.
func (im *Importer) Run(ctx context.Context, mongoURI, database string) error {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return fmt.Errorf("connect legacy mongo: %w", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := client.Ping(connectCtx, nil); err != nil {
		return fmt.Errorf("ping legacy mongo: %w", err)
	}

	legacyDB := client.Database(database)

	steps := []struct {
		name string
		run  func(context.Context, *mongo.Database) (int, error)
	}{
		{"blogtypes", im.importBlogTypes},
		{"blogs", im.importBlogs},
		{"footers", im.importFooters},
		{"investmentcards", im.importInvestmentCards},
		{"landing_page", im.importLandingPage},
		{"pagecontents", im.importPageContents},
	}

	for _, step := range steps {
		imported, err := step.run(ctx, legacyDB)
		if err != nil {
			return fmt.Errorf("import %s: %w", step.name, err)
		}
		im.log.Info("legacy collection imported",
			zap.String("collection", step.name),
			zap.Int("imported", imported),
		)
	}
	return nil
}

// legacySoftDelete mirrors the isDeleted/deletedAt pair on legacy documents.
type legacySoftDelete struct {
	IsDeleted bool       `bson:"isDeleted"`
	DeletedAt *time.Time `bson:"deletedAt"`
}

func (d legacySoftDelete) apply() models.SoftDelete {
	return models.SoftDelete{IsDeleted: d.IsDeleted, DeletedAt: d.DeletedAt}
}

func (im *Importer) importBlogTypes(ctx context.Context, db *mongo.Database) (int, error) {
	var doc struct {
		TypeID           string `bson:"typeId"`
		Name             string `bson:"name"`
		Slug             string `bson:"slug"`
		Description      string `bson:"description"`
		IsActive         bool   `bson:"isActive"`
		legacySoftDelete `bson:",inline"`
	}

	return im.each(ctx, db, "blogtypes", &doc, func() error {
		if doc.TypeID == "" {
			doc.TypeID = uuid.New().String()
		}
		if im.exists(&models.BlogTypeModel{}, "type_id = ?", doc.TypeID) {
			return nil
		}
		return im.db.Create(&models.BlogTypeModel{
			TypeID:      doc.TypeID,
			Name:        doc.Name,
			Slug:        doc.Slug,
			Description: doc.Description,
			IsActive:    doc.IsActive,
			SoftDelete:  doc.apply(),
		}).Error
	})
}

func (im *Importer) importBlogs(ctx context.Context, db *mongo.Database) (int, error) {
	var doc struct {
		BlogID           string     `bson:"blogId"`
		Title            string     `bson:"title"`
		Slug             string     `bson:"slug"`
		Content          string     `bson:"content"`
		Excerpt          string     `bson:"excerpt"`
		Author           string     `bson:"author"`
		TypeID           string     `bson:"typeId"`
		Image            string     `bson:"image"`
		Tags             []string   `bson:"tags"`
		IsPublished      bool       `bson:"isPublished"`
		PublishedAt      *time.Time `bson:"publishedAt"`
		ViewCount        int64      `bson:"viewCount"`
		ReadTime         int        `bson:"readTime"`
		legacySoftDelete `bson:",inline"`
	}

	return im.each(ctx, db, "blogs", &doc, func() error {
		if doc.BlogID == "" {
			doc.BlogID = uuid.New().String()
		}
		if im.exists(&models.BlogModel{}, "blog_id = ?", doc.BlogID) {
			return nil
		}
		return im.db.Create(&models.BlogModel{
			BlogID:      doc.BlogID,
			Title:       doc.Title,
			Slug:        doc.Slug,
			Content:     doc.Content,
			Excerpt:     doc.Excerpt,
			Author:      doc.Author,
			TypeID:      doc.TypeID,
			Image:       doc.Image,
			Tags:        doc.Tags,
			IsPublished: doc.IsPublished,
			PublishedAt: doc.PublishedAt,
			ViewCount:   doc.ViewCount,
			ReadTime:    doc.ReadTime,
			SoftDelete:  doc.apply(),
		}).Error
	})
}

func (im *Importer) importFooters(ctx context.Context, db *mongo.Database) (int, error) {
	var doc struct {
		FooterID           string                   `bson:"footerId"`
		CompanyName        string                   `bson:"companyName"`
		CompanyDescription string                   `bson:"companyDescription"`
		Contact            models.FooterContact     `bson:"contact"`
		Sections           []models.FooterSection   `bson:"sections"`
		SocialMedia        []models.SocialMediaLink `bson:"socialMedia"`
		BackToTopText      string                   `bson:"backToTopText"`
		CopyrightText      string                   `bson:"copyrightText"`
		LegalLinks         []models.FooterLink      `bson:"legalLinks"`
		legacySoftDelete   `bson:",inline"`
	}

	return im.each(ctx, db, "footers", &doc, func() error {
		if doc.FooterID == "" {
			doc.FooterID = uuid.New().String()
		}
		if im.exists(&models.FooterModel{}, "footer_id = ?", doc.FooterID) {
			return nil
		}
		return im.db.Create(&models.FooterModel{
			FooterID:           doc.FooterID,
			CompanyName:        doc.CompanyName,
			CompanyDescription: doc.CompanyDescription,
			Contact:            doc.Contact,
			Sections:           doc.Sections,
			SocialMedia:        doc.SocialMedia,
			BackToTopText:      doc.BackToTopText,
			CopyrightText:      doc.CopyrightText,
			LegalLinks:         doc.LegalLinks,
			SoftDelete:         doc.apply(),
		}).Error
	})
}

func (im *Importer) importInvestmentCards(ctx context.Context, db *mongo.Database) (int, error) {
	var doc struct {
		CardID           string `bson:"cardId"`
		CompanyName      string `bson:"companyName"`
		CompanyLogo      string `bson:"companyLogo"`
		Sections         []struct {
			SectionID string      `bson:"sectionId"`
			Title     string      `bson:"title"`
			Content   interface{} `bson:"content"`
			Order     int         `bson:"order"`
		} `bson:"sections"`
		legacySoftDelete `bson:",inline"`
	}

	return im.each(ctx, db, "investmentcards", &doc, func() error {
		if doc.CardID == "" {
			doc.CardID = uuid.New().String()
		}
		if im.exists(&models.InvestmentCardModel{}, "card_id = ?", doc.CardID) {
			return nil
		}

		sections := make([]models.CardSection, 0, len(doc.Sections))
		for _, raw := range doc.Sections {
			section := models.CardSection{
				SectionID: raw.SectionID,
				Title:     raw.Title,
				Content:   convertSectionContent(raw.Content),
				Order:     raw.Order,
			}
			if section.SectionID == "" {
				section.SectionID = uuid.New().String()
			}
			sections = append(sections, section)
		}

		return im.db.Create(&models.InvestmentCardModel{
			CardID:      doc.CardID,
			CompanyName: doc.CompanyName,
			CompanyLogo: doc.CompanyLogo,
			Sections:    sections,
			SoftDelete:  doc.apply(),
		}).Error
	})
}

func (im *Importer) importLandingPage(ctx context.Context, db *mongo.Database) (int, error) {
	var doc struct {
		Header   string              `bson:"header"`
		Subtitle string              `bson:"subtitle"`
		Numbers  []models.NumberItem `bson:"numbers"`
	}

	return im.each(ctx, db, "landing_page", &doc, func() error {
		var count int64
		im.db.Model(&models.LandingPageModel{}).Count(&count)
		if count > 0 {
			return nil
		}
		return im.db.Create(&models.LandingPageModel{
			Header:   doc.Header,
			Subtitle: doc.Subtitle,
			Numbers:  doc.Numbers,
		}).Error
	})
}

func (im *Importer) importPageContents(ctx context.Context, db *mongo.Database) (int, error) {
	var doc struct {
		PageContentID    string              `bson:"pageContentId"`
		PageType         string              `bson:"pageType"`
		Title            string              `bson:"title"`
		Slug             string              `bson:"slug"`
		Content          string              `bson:"content"`
		Subtitle         string              `bson:"subtitle"`
		Items            []models.PageItem   `bson:"items"`
		Numbers          []models.NumberItem `bson:"numbers"`
		BtnTxt           []models.ButtonText `bson:"btnTxt"`
		legacySoftDelete `bson:",inline"`
	}

	return im.each(ctx, db, "pagecontents", &doc, func() error {
		if !models.PageType(doc.PageType).Valid() {
			im.log.Warn("skipping page content with unknown page type", zap.String("page_type", doc.PageType))
			return nil
		}
		if doc.PageContentID == "" {
			doc.PageContentID = uuid.New().String()
		}
		if im.exists(&models.PageContentModel{}, "page_content_id = ?", doc.PageContentID) {
			return nil
		}
		return im.db.Create(&models.PageContentModel{
			PageContentID: doc.PageContentID,
			PageType:      models.PageType(doc.PageType),
			Title:         doc.Title,
			Slug:          doc.Slug,
			Content:       doc.Content,
			Subtitle:      doc.Subtitle,
			Items:         doc.Items,
			Numbers:       doc.Numbers,
			BtnTxt:        doc.BtnTxt,
			SoftDelete:    doc.apply(),
		}).Error
	})
}

// each streams a collection, decoding every document into doc and invoking
// handle. Returns how many documents were processed.
func (im *Importer) each(ctx context.Context, db *mongo.Database, collection string, doc interface{}, handle func() error) (int, error) {
	cursor, err := db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	imported := 0
	for cursor.Next(ctx) {
		if err := cursor.Decode(doc); err != nil {
			return imported, err
		}
		if err := handle(); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, cursor.Err()
}

func (im *Importer) exists(model interface{}, query string, args ...interface{}) bool {
	var count int64
	im.db.Model(model).Where(query, args...).Count(&count)
	return count > 0
}

// convertSectionContent maps a raw BSON value onto the section content union.
func convertSectionContent(raw interface{}) models.SectionContent {
	switch v := raw.(type) {
	case nil:
		return models.SectionContent{}
	case string:
		return models.SectionContent{Kind: models.SectionContentText, Text: v}
	case bson.A:
		list := make([]string, 0, len(v))
		items := make([]map[string]string, 0, len(v))
		for _, entry := range v {
			switch e := entry.(type) {
			case string:
				list = append(list, e)
			case bson.M:
				items = append(items, stringifyMap(e))
			case bson.D:
				items = append(items, stringifyMap(e.Map()))
			}
		}
		if len(items) > 0 {
			return models.SectionContent{Kind: models.SectionContentItems, Items: items}
		}
		return models.SectionContent{Kind: models.SectionContentList, List: list}
	case bson.M:
		return models.SectionContent{Kind: models.SectionContentObject, Object: stringifyMap(v)}
	case bson.D:
		return models.SectionContent{Kind: models.SectionContentObject, Object: stringifyMap(v.Map())}
	default:
		return models.SectionContent{Kind: models.SectionContentText, Text: fmt.Sprintf("%v", v)}
	}
}

func stringifyMap(m bson.M) map[string]string {
	out := make(map[string]string, len(m))
	for key, value := range m {
		if s, ok := value.(string); ok {
			out[key] = s
		} else {
			out[key] = fmt.Sprintf("%v", value)
		}
	}
	return out
}
