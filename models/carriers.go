package models

// ShipmentCarrier is the carrier for a shipment, from PayPal's supported
// carrier list. Some carriers have a global version as well as local
// subsidiaries; choose the carrier for your country, or the global version
// if no local entry exists. If the carrier is not listed, use
// ShipmentCarrierOther and set the carrier name in carrier_name_other.
type ShipmentCarrier string

const (
	ShipmentCarrierOther ShipmentCarrier = "OTHER"

	ShipmentCarrierAramex             ShipmentCarrier = "ARAMEX"
	ShipmentCarrierAustraliaPost      ShipmentCarrier = "AUSTRALIA_POST"
	ShipmentCarrierCanadaPost         ShipmentCarrier = "CANADA_POST"
	ShipmentCarrierChinaPost          ShipmentCarrier = "CHINA_POST"
	ShipmentCarrierChronopost         ShipmentCarrier = "CHRONOPOST"
	ShipmentCarrierCorreosDeEspana    ShipmentCarrier = "CORREOS_DE_ESPANA"
	ShipmentCarrierCorreosDeMexico    ShipmentCarrier = "CORREOS_DE_MEXICO"
	ShipmentCarrierDeutschePostDHL    ShipmentCarrier = "DEUTSCHE_DE"
	ShipmentCarrierDHL                ShipmentCarrier = "DHL"
	ShipmentCarrierDHLGlobalEcommerce ShipmentCarrier = "DHL_GLOBAL_ECOMMERCE"
	ShipmentCarrierDPD                ShipmentCarrier = "DPD"
	ShipmentCarrierDTDC               ShipmentCarrier = "DTDC"
	ShipmentCarrierFastway            ShipmentCarrier = "FASTWAY"
	ShipmentCarrierFedEx              ShipmentCarrier = "FEDEX"
	ShipmentCarrierGLS                ShipmentCarrier = "GLS"
	ShipmentCarrierHermes             ShipmentCarrier = "HERMES"
	ShipmentCarrierIndiaPost          ShipmentCarrier = "INDIA_POST"
	ShipmentCarrierJapanPost          ShipmentCarrier = "JAPAN_POST"
	ShipmentCarrierKoreaPost          ShipmentCarrier = "KR_KOREA_POST"
	ShipmentCarrierLaPoste            ShipmentCarrier = "LA_POSTE"
	ShipmentCarrierNZPost             ShipmentCarrier = "NZ_POST"
	ShipmentCarrierParcelforce        ShipmentCarrier = "PARCELFORCE"
	ShipmentCarrierPosteItaliane      ShipmentCarrier = "POSTE_ITALIANE"
	ShipmentCarrierPostNL             ShipmentCarrier = "POSTNL"
	ShipmentCarrierPostNord           ShipmentCarrier = "POSTNORD_LOGISTICS"
	ShipmentCarrierRoyalMail          ShipmentCarrier = "ROYAL_MAIL"
	ShipmentCarrierSFExpress          ShipmentCarrier = "SF_EX"
	ShipmentCarrierSingaporePost      ShipmentCarrier = "SG_SG_POST"
	ShipmentCarrierSwissPost          ShipmentCarrier = "SWISS_POST"
	ShipmentCarrierTNT                ShipmentCarrier = "TNT"
	ShipmentCarrierUPS                ShipmentCarrier = "UPS"
	ShipmentCarrierUSPS               ShipmentCarrier = "USPS"
	ShipmentCarrierYodel              ShipmentCarrier = "YODEL"
)

var shipmentCarriers = []ShipmentCarrier{
	ShipmentCarrierOther,
	ShipmentCarrierAramex, ShipmentCarrierAustraliaPost, ShipmentCarrierCanadaPost,
	ShipmentCarrierChinaPost, ShipmentCarrierChronopost, ShipmentCarrierCorreosDeEspana,
	ShipmentCarrierCorreosDeMexico, ShipmentCarrierDeutschePostDHL, ShipmentCarrierDHL,
	ShipmentCarrierDHLGlobalEcommerce, ShipmentCarrierDPD, ShipmentCarrierDTDC,
	ShipmentCarrierFastway, ShipmentCarrierFedEx, ShipmentCarrierGLS,
	ShipmentCarrierHermes, ShipmentCarrierIndiaPost, ShipmentCarrierJapanPost,
	ShipmentCarrierKoreaPost, ShipmentCarrierLaPoste, ShipmentCarrierNZPost,
	ShipmentCarrierParcelforce, ShipmentCarrierPosteItaliane, ShipmentCarrierPostNL,
	ShipmentCarrierPostNord, ShipmentCarrierRoyalMail, ShipmentCarrierSFExpress,
	ShipmentCarrierSingaporePost, ShipmentCarrierSwissPost, ShipmentCarrierTNT,
	ShipmentCarrierUPS, ShipmentCarrierUSPS, ShipmentCarrierYodel,
}

func (s *ShipmentCarrier) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "ShipmentCarrier", s, shipmentCarriers...)
}
