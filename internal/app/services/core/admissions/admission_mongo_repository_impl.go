package admissions

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	activePatientIndexName = "uniq_active_patient"
	activeBedIndexName     = "uniq_active_bed"
)

type AdmissionMongoRepository struct {
	Collection *mongo.Collection
}

func NewAdmissionMongoRepository(db *mongo.Client, dbName string) contracts.AdmissionRepository {
	return &AdmissionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAdmissions),
	}
}

// EnsureIndexes creates the partial unique indexes that stop a patient from
// holding two active admissions and a bed from being held twice.
func (repo *AdmissionMongoRepository) EnsureIndexes(ctx context.Context) error {
	activeOnly := bson.M{"active": true}
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "patientId", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(activeOnly).SetName(activePatientIndexName),
		},
		{
			Keys:    bson.D{{Key: "wardId", Value: 1}, {Key: "bedNumber", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(activeOnly).SetName(activeBedIndexName),
		},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "admissionDate", Value: -1}}},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (repo *AdmissionMongoRepository) CreateAdmission(ctx context.Context, admission *models.Admission) (admissionID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, admission)
	if err != nil {
		if conflict := mapActiveIndexConflict(err); conflict != nil {
			return "", conflict
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *AdmissionMongoRepository) FindByID(ctx context.Context, admissionID string) (*models.Admission, error) {
	objectID, err := primitive.ObjectIDFromHex(admissionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return repo.findOne(ctx, bson.M{"_id": objectID})
}

func (repo *AdmissionMongoRepository) FindActiveByPatientID(ctx context.Context, patientID string) (*models.Admission, error) {
	return repo.findOne(ctx, bson.M{"patientId": patientID, "active": true})
}

func (repo *AdmissionMongoRepository) FindActiveByBed(ctx context.Context, wardID string, bedNumber int) (*models.Admission, error) {
	return repo.findOne(ctx, bson.M{"wardId": wardID, "bedNumber": bedNumber, "active": true})
}

func (repo *AdmissionMongoRepository) FindActiveByWardID(ctx context.Context, wardID string) ([]models.Admission, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "bedNumber", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"wardId": wardID, "active": true}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	admissions := make([]models.Admission, 0)
	if err := cursor.All(ctx, &admissions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return admissions, nil
}

func (repo *AdmissionMongoRepository) FindAll(ctx context.Context, filter models.AdmissionFilter) ([]models.Admission, int, error) {
	query := bson.M{}
	if filter.PatientID != "" {
		query["patientId"] = filter.PatientID
	}
	if filter.WardID != "" {
		query["wardId"] = filter.WardID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := repo.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "admissionDate", Value: -1}})
	if filter.PageSize > 0 {
		findOptions.SetSkip(int64((filter.Page - 1) * filter.PageSize)).SetLimit(int64(filter.PageSize))
	}

	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	admissions := make([]models.Admission, 0)
	if err := cursor.All(ctx, &admissions); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return admissions, int(total), nil
}

func (repo *AdmissionMongoRepository) Transfer(ctx context.Context, update models.TransferUpdate) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(update.AdmissionID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{
		"_id":       objectID,
		"active":    true,
		"wardId":    update.FromWardID,
		"bedNumber": update.FromBedNumber,
		"status":    bson.M{"$in": models.AdmissionStatusesAllowedInto(models.AdmissionStatusTransferred)},
	}
	change := bson.M{
		"$set": bson.M{
			"wardId":    update.NewWardID,
			"bedNumber": update.NewBedNumber,
			"status":    models.AdmissionStatusTransferred,
			"updatedAt": time.Now().UTC(),
		},
		"$push": bson.M{
			"statusHistory":   update.History,
			"transferHistory": update.Transfer,
		},
	}

	result, err := repo.Collection.UpdateOne(ctx, filter, change)
	if err != nil {
		if conflict := mapActiveIndexConflict(err); conflict != nil {
			return false, conflict
		}
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

func (repo *AdmissionMongoRepository) Discharge(ctx context.Context, update models.DischargeUpdate) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(update.AdmissionID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{
		"_id":       objectID,
		"active":    true,
		"wardId":    update.WardID,
		"bedNumber": update.BedNumber,
		"status":    bson.M{"$in": models.AdmissionStatusesAllowedInto(models.AdmissionStatusDischarged)},
	}
	change := bson.M{
		"$set": bson.M{
			"status":              models.AdmissionStatusDischarged,
			"active":              false,
			"actualDischargeDate": update.DischargeDate,
			"dischargeNotes":      update.DischargeNotes,
			"dischargeSummary":    update.DischargeSummary,
			"updatedAt":           update.DischargeDate,
		},
		"$push": bson.M{"statusHistory": update.History},
	}

	result, err := repo.Collection.UpdateOne(ctx, filter, change)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

func (repo *AdmissionMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Admission, error) {
	var admission models.Admission
	err := repo.Collection.FindOne(ctx, filter).Decode(&admission)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &admission, nil
}

// mapActiveIndexConflict turns a duplicate key on one of the active-admission
// indexes into the conflict the caller would have seen from the pre-checks.
func mapActiveIndexConflict(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return nil
	}
	message := err.Error()
	switch {
	case strings.Contains(message, activeBedIndexName):
		return exceptions.ErrBedOccupied(err)
	case strings.Contains(message, activePatientIndexName):
		return exceptions.ErrPatientAlreadyAdmitted(err)
	}
	return nil
}
