package services

// Services defined in this package:
// - CourseService: catalog queries, navbar groups and filter pills
// - ResultsService: toppers shown on the results page
// - BlogService: blog listing and articles
// - InstituteService: institute profile and enquiry form options
// - EnquiryService: admission enquiries turned into WhatsApp chat links
