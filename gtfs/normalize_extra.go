package gtfs

import (
	"sort"
	"time"
)

// Normalizers for the optional tables. Same contract as normalize.go: typed
// records or a feed-fatal *FieldError.

func normalizeFareAttributes(rows []rawFareAttribute) ([]FareAttribute, error) {
	fares := make([]FareAttribute, 0, len(rows))
	for _, row := range rows {
		if err := requireField(fileFareAttributes, "fare_id", row.FareID); err != nil {
			return nil, err
		}
		price, err := floatField(fileFareAttributes, "price", row.Price)
		if err != nil {
			return nil, err
		}
		if err := requireField(fileFareAttributes, "currency_type", row.CurrencyType); err != nil {
			return nil, err
		}
		if !ValidCurrencyCode(row.CurrencyType) {
			return nil, newFieldError(fileFareAttributes, "currency_type", row.CurrencyType)
		}
		if row.PaymentMethod == "" {
			return nil, newMissingField(fileFareAttributes, "payment_method")
		}
		payment, err := codeField(fileFareAttributes, "payment_method", row.PaymentMethod, 0, 0, 1)
		if err != nil {
			return nil, err
		}
		var transfers *int
		if row.Transfers != "" {
			count, err := codeField(fileFareAttributes, "transfers", row.Transfers, 0, 0, 2)
			if err != nil {
				return nil, err
			}
			transfers = &count
		}
		duration, err := optIntField(fileFareAttributes, "transfer_duration", row.TransferDuration)
		if err != nil {
			return nil, err
		}
		fares = append(fares, FareAttribute{
			FareID:           row.FareID,
			Price:            price,
			CurrencyType:     row.CurrencyType,
			PaymentMethod:    PaymentMethod(payment),
			Transfers:        transfers,
			AgencyID:         row.AgencyID,
			TransferDuration: duration,
		})
	}
	return fares, nil
}

func normalizeFareRules(rows []rawFareRule) ([]FareRule, error) {
	rules := make([]FareRule, 0, len(rows))
	for _, row := range rows {
		if err := requireField(fileFareRules, "fare_id", row.FareID); err != nil {
			return nil, err
		}
		rules = append(rules, FareRule{
			FareID:        row.FareID,
			RouteID:       row.RouteID,
			OriginID:      row.OriginID,
			DestinationID: row.DestinationID,
			ContainsID:    row.ContainsID,
		})
	}
	return rules, nil
}

// normalizeShapes groups points by shape id and establishes the ascending
// sequence order the queries rely on, independent of the input row order.
func normalizeShapes(rows []rawShapePoint) (map[string][]ShapePoint, error) {
	shapes := make(map[string][]ShapePoint)
	for _, row := range rows {
		if err := requireField(fileShapes, "shape_id", row.ShapeID); err != nil {
			return nil, err
		}
		lat, err := floatField(fileShapes, "shape_pt_lat", row.Latitude)
		if err != nil {
			return nil, err
		}
		lon, err := floatField(fileShapes, "shape_pt_lon", row.Longitude)
		if err != nil {
			return nil, err
		}
		sequence, err := intField(fileShapes, "shape_pt_sequence", row.Sequence)
		if err != nil {
			return nil, err
		}
		distTraveled, err := optFloatField(fileShapes, "shape_dist_traveled", row.DistTraveled)
		if err != nil {
			return nil, err
		}
		shapes[row.ShapeID] = append(shapes[row.ShapeID], ShapePoint{
			ShapeID:      row.ShapeID,
			Location:     Location{Latitude: lat, Longitude: lon},
			Sequence:     sequence,
			DistTraveled: distTraveled,
		})
	}
	for _, points := range shapes {
		sort.Slice(points, func(i, j int) bool { return points[i].Sequence < points[j].Sequence })
	}
	return shapes, nil
}

func normalizeFrequencies(rows []rawFrequency) ([]Frequency, error) {
	frequencies := make([]Frequency, 0, len(rows))
	for _, row := range rows {
		if err := requireField(fileFrequencies, "trip_id", row.TripID); err != nil {
			return nil, err
		}
		start, err := clockField(fileFrequencies, "start_time", row.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := clockField(fileFrequencies, "end_time", row.EndTime)
		if err != nil {
			return nil, err
		}
		headway, err := intField(fileFrequencies, "headway_secs", row.HeadwaySecs)
		if err != nil {
			return nil, err
		}
		exact, err := codeField(fileFrequencies, "exact_times", row.ExactTimes, 0, 0, 1)
		if err != nil {
			return nil, err
		}
		frequencies = append(frequencies, Frequency{
			TripID:      row.TripID,
			Start:       start,
			End:         end,
			HeadwaySecs: headway,
			ExactTimes:  ExactTimes(exact),
		})
	}
	return frequencies, nil
}

func normalizeTransfers(rows []rawTransfer) ([]Transfer, error) {
	transfers := make([]Transfer, 0, len(rows))
	for _, row := range rows {
		if err := requireField(fileTransfers, "from_stop_id", row.FromStopID); err != nil {
			return nil, err
		}
		if err := requireField(fileTransfers, "to_stop_id", row.ToStopID); err != nil {
			return nil, err
		}
		transferType, err := codeField(fileTransfers, "transfer_type", row.TransferType, 0, 0, 3)
		if err != nil {
			return nil, err
		}
		transfer := Transfer{
			FromStopID: row.FromStopID,
			ToStopID:   row.ToStopID,
			Type:       TransferType(transferType),
		}
		// A minimum-time transfer without a minimum time is unrepresentable.
		if transfer.Type == TransferTypeMinTime {
			minTime, err := intField(fileTransfers, "min_transfer_time", row.MinTransferTime)
			if err != nil {
				return nil, err
			}
			transfer.MinTransferTime = &minTime
		}
		transfers = append(transfers, transfer)
	}
	return transfers, nil
}

func normalizePathways(rows []rawPathway) ([]Pathway, error) {
	pathways := make([]Pathway, 0, len(rows))
	for _, row := range rows {
		if err := requireField(filePathways, "pathway_id", row.ID); err != nil {
			return nil, err
		}
		if err := requireField(filePathways, "from_stop_id", row.FromStopID); err != nil {
			return nil, err
		}
		if err := requireField(filePathways, "to_stop_id", row.ToStopID); err != nil {
			return nil, err
		}
		if row.Mode == "" {
			return nil, newMissingField(filePathways, "pathway_mode")
		}
		mode, err := codeField(filePathways, "pathway_mode", row.Mode, 0, 0, 7)
		if err != nil {
			return nil, err
		}
		if row.IsBidirectional == "" {
			return nil, newMissingField(filePathways, "is_bidirectional")
		}
		bidirectional, err := codeField(filePathways, "is_bidirectional", row.IsBidirectional, 0, 0, 1)
		if err != nil {
			return nil, err
		}
		length, err := optFloatField(filePathways, "length", row.Length)
		if err != nil {
			return nil, err
		}
		traversal, err := optIntField(filePathways, "traversal_time", row.TraversalTime)
		if err != nil {
			return nil, err
		}
		stairs, err := optIntField(filePathways, "stair_count", row.StairCount)
		if err != nil {
			return nil, err
		}
		maxSlope, err := optFloatField(filePathways, "max_slope", row.MaxSlope)
		if err != nil {
			return nil, err
		}
		minWidth, err := optFloatField(filePathways, "min_width", row.MinWidth)
		if err != nil {
			return nil, err
		}
		pathways = append(pathways, Pathway{
			ID:                   row.ID,
			FromStopID:           row.FromStopID,
			ToStopID:             row.ToStopID,
			Mode:                 PathwayMode(mode),
			IsBidirectional:      Bidirectional(bidirectional),
			Length:               length,
			TraversalTime:        traversal,
			StairCount:           stairs,
			MaxSlope:             maxSlope,
			MinWidth:             minWidth,
			SignpostedAs:         row.SignpostedAs,
			ReversedSignpostedAs: row.ReversedSignpostedAs,
		})
	}
	return pathways, nil
}

func normalizeLevels(rows []rawLevel) ([]Level, error) {
	levels := make([]Level, 0, len(rows))
	for _, row := range rows {
		if err := requireField(fileLevels, "level_id", row.ID); err != nil {
			return nil, err
		}
		index, err := floatField(fileLevels, "level_index", row.Index)
		if err != nil {
			return nil, err
		}
		levels = append(levels, Level{ID: row.ID, Index: index, Name: row.Name})
	}
	return levels, nil
}

func normalizeFeedInfos(rows []rawFeedInfo, loc *time.Location) ([]FeedInfo, error) {
	infos := make([]FeedInfo, 0, len(rows))
	for _, row := range rows {
		if err := requireField(fileFeedInfo, "feed_publisher_name", row.PublisherName); err != nil {
			return nil, err
		}
		if err := requireField(fileFeedInfo, "feed_publisher_url", row.PublisherURL); err != nil {
			return nil, err
		}
		if err := requireField(fileFeedInfo, "feed_lang", row.Language); err != nil {
			return nil, err
		}
		info := FeedInfo{
			PublisherName: row.PublisherName,
			PublisherURL:  row.PublisherURL,
			Language:      row.Language,
			Version:       row.Version,
			ContactEmail:  row.ContactEmail,
			ContactURL:    row.ContactURL,
		}
		if row.StartDate != "" {
			start, err := dateField(fileFeedInfo, "feed_start_date", row.StartDate, loc)
			if err != nil {
				return nil, err
			}
			info.Start = &start
		}
		if row.EndDate != "" {
			end, err := dateField(fileFeedInfo, "feed_end_date", row.EndDate, loc)
			if err != nil {
				return nil, err
			}
			info.End = &end
		}
		if info.Start != nil && info.End != nil && info.End.Before(*info.Start) {
			return nil, newFieldError(fileFeedInfo, "feed_end_date", row.EndDate)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// normalizeTranslations builds the id -> language -> text dictionary.
func normalizeTranslations(rows []rawTranslation) (Translations, error) {
	translations := make(Translations)
	for _, row := range rows {
		if err := requireField(fileTranslations, "trans_id", row.ID); err != nil {
			return nil, err
		}
		if err := requireField(fileTranslations, "lang", row.Language); err != nil {
			return nil, err
		}
		if translations[row.ID] == nil {
			translations[row.ID] = make(Translation)
		}
		translations[row.ID][row.Language] = row.Translation
	}
	return translations, nil
}
