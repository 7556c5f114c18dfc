package entity

// CompanyID identifica a la empresa (tenant) dueña de los datos.
// Tipo propio para que el acceso entre empresas sea un parámetro visible en la
// firma de cada operación, no algo inferido del contexto de la petición.
type CompanyID string
