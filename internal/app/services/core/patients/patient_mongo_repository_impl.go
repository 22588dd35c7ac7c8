package patients

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (repo *PatientMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "patientId", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_patient_id")},
		{Keys: bson.D{{Key: "contactInfo.phone", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_phone")},
		{Keys: bson.D{{Key: "registrationType", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (repo *PatientMongoRepository) CreatePatient(ctx context.Context, patient *models.Patient) (id string, err error) {
	result, err := repo.Collection.InsertOne(ctx, patient)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrPatientPhoneAlreadyExist(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *PatientMongoRepository) FindByID(ctx context.Context, id string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return repo.findOne(ctx, bson.M{"_id": objectID})
}

func (repo *PatientMongoRepository) FindByPhone(ctx context.Context, phone string) (*models.Patient, error) {
	return repo.findOne(ctx, bson.M{"contactInfo.phone": phone})
}

func (repo *PatientMongoRepository) FindAll(ctx context.Context, filter models.PatientFilter) ([]models.Patient, int, error) {
	query := bson.M{}
	if filter.RegistrationType != "" {
		query["registrationType"] = filter.RegistrationType
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"personalInfo.firstName": pattern},
			bson.M{"personalInfo.lastName": pattern},
			bson.M{"patientId": pattern},
		}
	}

	total, err := repo.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.PageSize > 0 {
		findOptions.SetSkip(int64((filter.Page - 1) * filter.PageSize)).SetLimit(int64(filter.PageSize))
	}

	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	patients := make([]models.Patient, 0)
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, int(total), nil
}

func (repo *PatientMongoRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	objectID, err := primitive.ObjectIDFromHex(patient.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"contactInfo":      patient.ContactInfo,
		"emergencyContact": patient.EmergencyContact,
		"medicalHistory":   patient.MedicalHistory,
		"status":           patient.Status,
		"updatedAt":        patient.UpdatedAt,
	}}

	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrPatientPhoneAlreadyExist(err)
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *PatientMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Patient, error) {
	var patient models.Patient
	err := repo.Collection.FindOne(ctx, filter).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}
