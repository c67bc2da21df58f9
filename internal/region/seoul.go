package region

import "github.com/shenikar/hive_reporting_system/internal/models"

const seoul = "서울특별시"

// SeoulDistricts - 25 районов Сеула с пятизначными кодами sigungu
var SeoulDistricts = []models.Region{
	{Code: "11110", City: seoul, District: "종로구"},
	{Code: "11140", City: seoul, District: "중구"},
	{Code: "11170", City: seoul, District: "용산구"},
	{Code: "11200", City: seoul, District: "성동구"},
	{Code: "11215", City: seoul, District: "광진구"},
	{Code: "11230", City: seoul, District: "동대문구"},
	{Code: "11260", City: seoul, District: "중랑구"},
	{Code: "11290", City: seoul, District: "성북구"},
	{Code: "11305", City: seoul, District: "강북구"},
	{Code: "11320", City: seoul, District: "도봉구"},
	{Code: "11350", City: seoul, District: "노원구"},
	{Code: "11380", City: seoul, District: "은평구"},
	{Code: "11410", City: seoul, District: "서대문구"},
	{Code: "11440", City: seoul, District: "마포구"},
	{Code: "11470", City: seoul, District: "양천구"},
	{Code: "11500", City: seoul, District: "강서구"},
	{Code: "11530", City: seoul, District: "구로구"},
	{Code: "11545", City: seoul, District: "금천구"},
	{Code: "11560", City: seoul, District: "영등포구"},
	{Code: "11590", City: seoul, District: "동작구"},
	{Code: "11620", City: seoul, District: "관악구"},
	{Code: "11650", City: seoul, District: "서초구"},
	{Code: "11680", City: seoul, District: "강남구"},
	{Code: "11710", City: seoul, District: "송파구"},
	{Code: "11740", City: seoul, District: "강동구"},
}
